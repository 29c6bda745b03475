package dynamo

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sigabrtio/gosoup/blobstore"
)

const (
	attrName = "name"
	attrData = "data"
)

// Store implements blobstore.Store on a DynamoDB table.
type Store struct {
	client *dynamodb.Client
	table  string
	prefix string
}

// New creates a new DynamoDB blob store.
// rootPrefix is prepended to all keys (e.g. "pages/").
func New(client *dynamodb.Client, table, rootPrefix string) *Store {
	return &Store{
		client: client,
		table:  table,
		prefix: rootPrefix,
	}
}

// NewFromDefaultConfig creates a store with a client built from the ambient
// AWS configuration (environment, shared config files, instance metadata).
func NewFromDefaultConfig(ctx context.Context, table, rootPrefix string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return New(dynamodb.NewFromConfig(cfg), table, rootPrefix), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put writes a blob as a single item.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	copied := make([]byte, len(data))
	copy(copied, data)

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			attrName: &types.AttributeValueMemberS{Value: s.key(name)},
			attrData: &types.AttributeValueMemberB{Value: copied},
		},
	})
	return err
}

// Get returns the blob's contents with a strongly consistent read, so a
// page evicted moments ago loads back its latest bytes.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]types.AttributeValue{
			attrName: &types.AttributeValueMemberS{Value: s.key(name)},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, blobstore.ErrNotFound
	}

	data, ok := out.Item[attrData].(*types.AttributeValueMemberB)
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data.Value, nil
}

// Delete removes a blob. Missing blobs are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			attrName: &types.AttributeValueMemberS{Value: s.key(name)},
		},
	})
	return err
}

// List scans the table for names with the given prefix, sorted.
// A scan is acceptable here: page counts are small and List is not on the
// vector's hot path.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var names []string
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:            aws.String(s.table),
		ProjectionExpression: aws.String("#n"),
		ExpressionAttributeNames: map[string]string{
			"#n": attrName,
		},
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			attr, ok := item[attrName].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			name := strings.TrimPrefix(attr.Value, s.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" && strings.HasPrefix(attr.Value, fullPrefix) {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}
