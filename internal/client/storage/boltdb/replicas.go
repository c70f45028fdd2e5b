package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
)

// SaveReplicaState persists the serialized replica state of a note
func (s *Storage) SaveReplicaState(ctx context.Context, noteID string, state []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReplicas)
		if err := bucket.Put([]byte(noteID), state); err != nil {
			return fmt.Errorf("failed to save replica state: %w", err)
		}
		return nil
	})

	return mapWriteError(err)
}

// GetReplicaState retrieves the serialized replica state of a note
func (s *Storage) GetReplicaState(ctx context.Context, noteID string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var state []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReplicas)

		data := bucket.Get([]byte(noteID))
		if data == nil {
			return storage.ErrReplicaNotFound
		}

		state = make([]byte, len(data))
		copy(state, data)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return state, nil
}

// DeleteReplicaState removes the replica state of a note
func (s *Storage) DeleteReplicaState(ctx context.Context, noteID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReplicas)

		if bucket.Get([]byte(noteID)) == nil {
			return storage.ErrReplicaNotFound
		}

		if err := bucket.Delete([]byte(noteID)); err != nil {
			return fmt.Errorf("failed to delete replica state: %w", err)
		}
		return nil
	})
}
