package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// SaveOperation stores or updates a queued operation in BoltDB.
// Операция пишется одной атомарной транзакцией: после возврата из
// метода она гарантированно переживет рестарт процесса.
func (s *Storage) SaveOperation(ctx context.Context, op *models.QueuedOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if err := bucket.Put([]byte(op.ID), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}
		return nil
	})

	if err != nil {
		return mapWriteError(fmt.Errorf("transaction failed: %w", err))
	}

	return nil
}

// GetOperation retrieves a queued operation by ID
func (s *Storage) GetOperation(ctx context.Context, id string) (*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var op *models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrOperationNotFound
		}

		op = &models.QueuedOperation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return op, nil
}

// ListOperations returns all queued operations (pending and failed)
func (s *Storage) ListOperations(ctx context.Context) ([]*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)

		return bucket.ForEach(func(k, v []byte) error {
			var op models.QueuedOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	return ops, nil
}

// DeleteOperation removes an operation from the queue
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrOperationNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		return nil
	})
}

// ClearOperations removes all operations from the queue
func (s *Storage) ClearOperations(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketQueue); err != nil {
			return fmt.Errorf("failed to delete queue bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketQueue); err != nil {
			return fmt.Errorf("failed to recreate queue bucket: %w", err)
		}
		return nil
	})
}
