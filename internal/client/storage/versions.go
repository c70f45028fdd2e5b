package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out versions_mock.go . VersionStorage

// VersionStorage defines interface for the append-only version history.
// Записи неизменяемы: интерфейс намеренно не содержит update/delete
// для отдельных версий.
type VersionStorage interface {
	// SaveVersion appends a version record
	SaveVersion(ctx context.Context, version *models.Version) error

	// GetVersion retrieves a version by ID
	// Returns ErrVersionNotFound if version doesn't exist
	GetVersion(ctx context.Context, id string) (*models.Version, error)

	// ListVersions returns all versions of a note ordered oldest -> newest
	ListVersions(ctx context.Context, noteID string) ([]*models.Version, error)

	// LatestVersion returns the newest version of a note
	// Returns ErrVersionNotFound if the note has no versions
	LatestVersion(ctx context.Context, noteID string) (*models.Version, error)
}

//go:generate moq -out content_mock.go . ContentStorage

// ContentStorage defines interface for the local content-addressed cache.
// Ключ - hex SHA-256 контента, поэтому put идемпотентен.
type ContentStorage interface {
	// PutContent stores content under its hash
	PutContent(ctx context.Context, contentHash string, data []byte) error

	// GetContent retrieves content by hash
	// Returns ErrContentNotFound if hash is not cached
	GetContent(ctx context.Context, contentHash string) ([]byte, error)
}
