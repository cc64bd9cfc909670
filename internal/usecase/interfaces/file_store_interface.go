package interfaces

import "context"

// IFileStore abstracts the object store holding agreement PDFs (MinIO).

type IFileStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}
