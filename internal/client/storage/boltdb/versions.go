package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// SaveVersion appends a version record.
// История append-only: существующая запись никогда не перезаписывается.
func (s *Storage) SaveVersion(ctx context.Context, version *models.Version) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(version)
	if err != nil {
		return fmt.Errorf("failed to marshal version: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketVersions)

		if bucket.Get([]byte(version.ID)) != nil {
			return fmt.Errorf("version %s already exists, history is immutable", version.ID)
		}

		if err := bucket.Put([]byte(version.ID), data); err != nil {
			return fmt.Errorf("failed to save version: %w", err)
		}
		return nil
	})

	if err != nil {
		return mapWriteError(err)
	}

	return nil
}

// GetVersion retrieves a version by ID
func (s *Storage) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var version *models.Version

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketVersions)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrVersionNotFound
		}

		version = &models.Version{}
		if err := json.Unmarshal(data, version); err != nil {
			return fmt.Errorf("failed to unmarshal version: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return version, nil
}

// ListVersions returns all versions of a note ordered oldest -> newest
func (s *Storage) ListVersions(ctx context.Context, noteID string) ([]*models.Version, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var versions []*models.Version

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketVersions)

		return bucket.ForEach(func(k, v []byte) error {
			var version models.Version
			if err := json.Unmarshal(v, &version); err != nil {
				return fmt.Errorf("failed to unmarshal version: %w", err)
			}
			if version.NoteID == noteID {
				versions = append(versions, &version)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].CreatedAt.Before(versions[j].CreatedAt)
	})

	return versions, nil
}

// LatestVersion returns the newest version of a note
func (s *Storage) LatestVersion(ctx context.Context, noteID string) (*models.Version, error) {
	versions, err := s.ListVersions(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, storage.ErrVersionNotFound
	}
	return versions[len(versions)-1], nil
}

// PutContent stores content in the local content-addressed cache.
// Ключ - hash контента, поэтому повторный put тех же байт безвреден.
func (s *Storage) PutContent(ctx context.Context, contentHash string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketContent)
		if err := bucket.Put([]byte(contentHash), data); err != nil {
			return fmt.Errorf("failed to put content: %w", err)
		}
		return nil
	})

	return mapWriteError(err)
}

// GetContent retrieves content by hash from the local cache
func (s *Storage) GetContent(ctx context.Context, contentHash string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var content []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketContent)

		data := bucket.Get([]byte(contentHash))
		if data == nil {
			return storage.ErrContentNotFound
		}

		content = make([]byte, len(data))
		copy(content, data)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return content, nil
}
