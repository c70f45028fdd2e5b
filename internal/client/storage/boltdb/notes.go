package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// SaveNote stores or updates a note snapshot in BoltDB
func (s *Storage) SaveNote(ctx context.Context, note *models.Note) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		if err := bucket.Put([]byte(note.ID), data); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		return nil
	})

	if err != nil {
		return mapWriteError(fmt.Errorf("transaction failed: %w", err))
	}

	return nil
}

// GetNote retrieves a note by ID
func (s *Storage) GetNote(ctx context.Context, id string) (*models.Note, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var note *models.Note

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrNoteNotFound
		}

		note = &models.Note{}
		if err := json.Unmarshal(data, note); err != nil {
			return fmt.Errorf("failed to unmarshal note: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return note, nil
}

// ListNotes returns all non-deleted notes
func (s *Storage) ListNotes(ctx context.Context) ([]*models.Note, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var notes []*models.Note

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)

		return bucket.ForEach(func(k, v []byte) error {
			var note models.Note
			if err := json.Unmarshal(v, &note); err != nil {
				return fmt.Errorf("failed to unmarshal note: %w", err)
			}
			if !note.Deleted {
				notes = append(notes, &note)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// DeleteNote marks a note as deleted (soft delete)
func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	note, err := s.GetNote(ctx, id)
	if err != nil {
		return err
	}

	note.Deleted = true
	note.UpdatedAt = time.Now()

	return s.SaveNote(ctx, note)
}
