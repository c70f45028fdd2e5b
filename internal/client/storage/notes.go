package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out notes_mock.go . NoteStorage

// NoteStorage defines interface for storing note snapshots on client
type NoteStorage interface {
	// SaveNote stores or updates a note snapshot
	SaveNote(ctx context.Context, note *models.Note) error

	// GetNote retrieves a note by ID
	// Returns ErrNoteNotFound if note doesn't exist
	GetNote(ctx context.Context, id string) (*models.Note, error)

	// ListNotes returns all non-deleted notes
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// DeleteNote marks a note as deleted (soft delete)
	DeleteNote(ctx context.Context, id string) error
}
