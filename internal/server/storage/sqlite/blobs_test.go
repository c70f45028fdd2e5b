package sqlite

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/server/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func contentID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestStorage_New_RunsMigrations(t *testing.T) {
	store := createTestStorage(t)

	// Таблица blobs создана миграцией
	var name string
	err := store.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='blobs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "blobs", name)
}

func TestStorage_SaveBlob(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	data := []byte("note envelope bytes")
	id := contentID(data)

	existed, err := store.SaveBlob(ctx, id, data)
	require.NoError(t, err)
	assert.False(t, existed)

	got, err := store.GetBlob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStorage_SaveBlob_Deduplicates(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	data := []byte("same bytes twice")
	id := contentID(data)

	existed, err := store.SaveBlob(ctx, id, data)
	require.NoError(t, err)
	assert.False(t, existed)

	existed, err = store.SaveBlob(ctx, id, data)
	require.NoError(t, err)
	assert.True(t, existed, "second save of the same content must be a no-op")

	total, err := store.TotalSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), total, "dedup must not double-count size")
}

func TestStorage_SaveBlob_Validation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.SaveBlob(ctx, "", []byte("data"))
	assert.Error(t, err)

	_, err = store.SaveBlob(ctx, "some-id", nil)
	assert.Error(t, err)
}

func TestStorage_GetBlob_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetBlob(ctx, "missing-content-id")
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)
}

func TestStorage_TotalSize(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	total, err := store.TotalSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	first := []byte("first blob")
	second := []byte("second, longer blob")
	_, err = store.SaveBlob(ctx, contentID(first), first)
	require.NoError(t, err)
	_, err = store.SaveBlob(ctx, contentID(second), second)
	require.NoError(t, err)

	total, err = store.TotalSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(first)+len(second)), total)
}
