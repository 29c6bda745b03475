// Package dynamo implements blobstore.Store on DynamoDB, one item per blob.
//
// DynamoDB items are capped at 400 KB, so this store suits vectors with
// small pages (element size * page size well under the cap). For larger
// pages use the s3 or minio stores.
//
// The table needs a string partition key named "name"; blob bytes live in
// the binary attribute "data".
package dynamo
