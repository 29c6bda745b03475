// Package minio implements blobstore.Store for MinIO and other
// S3-compatible object storage.
//
// Usage:
//
//	client, _ := minio.New("play.min.io", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.New(client, "my-bucket", "pages/")
package minio
