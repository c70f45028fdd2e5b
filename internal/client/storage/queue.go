package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable operation queue.
// Очередь переживает перезапуск процесса: каждая операция хранится
// отдельной записью и мутируется атомарно.
type QueueStorage interface {
	// SaveOperation stores or updates a queued operation
	SaveOperation(ctx context.Context, op *models.QueuedOperation) error

	// GetOperation retrieves a queued operation by ID
	// Returns ErrOperationNotFound if operation doesn't exist
	GetOperation(ctx context.Context, id string) (*models.QueuedOperation, error)

	// ListOperations returns all queued operations (pending and failed)
	ListOperations(ctx context.Context) ([]*models.QueuedOperation, error)

	// DeleteOperation removes an operation from the queue
	DeleteOperation(ctx context.Context, id string) error

	// ClearOperations removes all operations from the queue
	ClearOperations(ctx context.Context) error
}
