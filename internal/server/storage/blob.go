package storage

import "context"

//go:generate moq -out blob_mock.go . BlobStorage

// BlobStorage defines interface for content-addressed blob persistence
type BlobStorage interface {
	// SaveBlob stores a blob under its content id.
	// Saving the same content twice is a no-op; existed reports whether
	// the blob was already present (deduplication)
	SaveBlob(ctx context.Context, contentID string, data []byte) (existed bool, err error)

	// GetBlob retrieves blob bytes by content id
	// Returns ErrBlobNotFound if the blob doesn't exist
	GetBlob(ctx context.Context, contentID string) ([]byte, error)

	// TotalSize returns the total size of all stored blobs in bytes.
	// Used for quota enforcement
	TotalSize(ctx context.Context) (int64, error)
}
