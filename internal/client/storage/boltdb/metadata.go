package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
)

var (
	keyNodeID       = []byte("node_id")
	keyLastSyncTime = []byte("last_sync_time")
)

// SaveNodeID persists the node identifier of this client
func (s *Storage) SaveNodeID(ctx context.Context, nodeID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if err := bucket.Put(keyNodeID, []byte(nodeID)); err != nil {
			return fmt.Errorf("failed to save node id: %w", err)
		}
		return nil
	})

	return mapWriteError(err)
}

// GetNodeID returns the stored node identifier, empty string when not set
func (s *Storage) GetNodeID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var nodeID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if data := bucket.Get(keyNodeID); data != nil {
			nodeID = string(data)
		}
		return nil
	})

	if err != nil {
		return "", err
	}

	return nodeID, nil
}

// SaveLastSyncTime persists the timestamp of the last successful sync pass
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := t.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal sync time: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if err := bucket.Put(keyLastSyncTime, data); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})

	return mapWriteError(err)
}

// GetLastSyncTime returns the last successful sync timestamp, zero time when never synced
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)

		data := bucket.Get(keyLastSyncTime)
		if data == nil {
			return nil
		}

		if err := t.UnmarshalText(data); err != nil {
			return fmt.Errorf("failed to unmarshal sync time: %w", err)
		}
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}
