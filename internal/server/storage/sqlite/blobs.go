package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/server/storage"
)

// SaveBlob stores a blob under its content id (insert-or-ignore)
func (s *Storage) SaveBlob(ctx context.Context, contentID string, data []byte) (bool, error) {
	if contentID == "" {
		return false, fmt.Errorf("content id cannot be empty")
	}
	if len(data) == 0 {
		return false, fmt.Errorf("blob data cannot be empty")
	}

	// Контент-адресация делает запись идемпотентной: одинаковый contentID
	// означает одинаковые байты, перезаписывать нечего
	query := `
		INSERT INTO blobs (content_id, data, size_bytes, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(content_id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query, contentID, data, int64(len(data)), time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("failed to save blob: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 0, nil
}

// GetBlob retrieves blob bytes by content id
func (s *Storage) GetBlob(ctx context.Context, contentID string) ([]byte, error) {
	query := `SELECT data FROM blobs WHERE content_id = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, contentID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}

	return data, nil
}

// TotalSize returns the total size of all stored blobs in bytes
func (s *Storage) TotalSize(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(size_bytes), 0) FROM blobs`

	var total int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get total size: %w", err)
	}

	return total, nil
}
