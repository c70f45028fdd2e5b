package storage

import "errors"

// Common storage errors
var (
	// ErrBlobNotFound indicates that a blob with this content id is not stored
	ErrBlobNotFound = errors.New("blob not found")
)
