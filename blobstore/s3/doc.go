// Package s3 implements blobstore.Store for Amazon S3.
//
// Usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3store.New(s3.NewFromConfig(cfg), "my-bucket", "pages/")
//
// Uploads go through the transfer manager so large pages are written in
// parallel parts.
package s3
