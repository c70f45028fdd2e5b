package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveNodeID persists the local replica node ID
	SaveNodeID(ctx context.Context, nodeID string) error

	// GetNodeID retrieves the local replica node ID
	// Returns empty string if no node ID was persisted yet
	GetNodeID(ctx context.Context) (string, error)

	// SaveLastSyncTime saves the wall-clock time of the last successful pass
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the time of the last successful pass
	// Returns zero time if no pass has completed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}
