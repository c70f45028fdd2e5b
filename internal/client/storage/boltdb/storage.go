package boltdb

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketNotes    = []byte("notes")
	bucketQueue    = []byte("queue")
	bucketVersions = []byte("versions")
	bucketReplicas = []byte("replicas")
	bucketContent  = []byte("content")
	bucketMetadata = []byte("metadata")
)

// Storage represents BoltDB storage implementation for client.
// Один файл BoltDB держит все локальные данные: заметки, durable-очередь
// операций, историю версий, состояния CRDT-реплик, content-кэш и метаданные.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	buckets := [][]byte{
		bucketNotes,
		bucketQueue,
		bucketVersions,
		bucketReplicas,
		bucketContent,
		bucketMetadata,
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// mapWriteError транслирует ошибки записи в sentinel ошибки storage.
// Переполнение диска отображается в ErrQuotaExceeded, чтобы вызывающий
// мог пометить операцию, а не ретраить ее вслепую.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w: %w", storage.ErrQuotaExceeded, err)
	}
	return err
}
