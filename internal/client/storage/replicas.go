package storage

import "context"

//go:generate moq -out replicas_mock.go . ReplicaStorage

// ReplicaStorage defines interface for persisting serialized CRDT replica
// state. Реплика восстанавливается после перезапуска без сети.
type ReplicaStorage interface {
	// SaveReplicaState stores serialized replica state for a note
	SaveReplicaState(ctx context.Context, noteID string, state []byte) error

	// GetReplicaState retrieves serialized replica state for a note
	// Returns ErrReplicaNotFound if no state was persisted
	GetReplicaState(ctx context.Context, noteID string) ([]byte, error)

	// DeleteReplicaState removes persisted replica state for a note
	DeleteReplicaState(ctx context.Context, noteID string) error
}
