package storage

import "errors"

// Common client storage errors
var (
	// ErrNoteNotFound indicates that note was not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrOperationNotFound indicates that queued operation was not found
	ErrOperationNotFound = errors.New("queued operation not found")

	// ErrVersionNotFound indicates that version record was not found
	ErrVersionNotFound = errors.New("version not found")

	// ErrReplicaNotFound indicates that no persisted replica state exists
	ErrReplicaNotFound = errors.New("replica state not found")

	// ErrContentNotFound indicates that content cache has no entry for hash
	ErrContentNotFound = errors.New("content not found")

	// ErrQuotaExceeded indicates that the local durable store is full
	ErrQuotaExceeded = errors.New("local storage quota exceeded")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
