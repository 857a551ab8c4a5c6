// Package storage provides read access to stock exports kept in object storage.
//
// It wraps the MinIO Go client, which speaks to both AWS S3 and self-hosted MinIO.
// Stock sources given as "s3://bucket/key" are fetched through this package; plain
// paths are read from the local filesystem instead.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	bucket, key, ok, err := storage.ParseLocation("s3://exports/stock.csv")
//	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
package storage
