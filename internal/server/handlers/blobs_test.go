package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemBlobs возвращает mock-хранилище поверх map
func newMemBlobs() *storage.BlobStorageMock {
	blobs := map[string][]byte{}
	return &storage.BlobStorageMock{
		SaveBlobFunc: func(ctx context.Context, contentID string, data []byte) (bool, error) {
			if _, ok := blobs[contentID]; ok {
				return true, nil
			}
			blobs[contentID] = append([]byte(nil), data...)
			return false, nil
		},
		GetBlobFunc: func(ctx context.Context, contentID string) ([]byte, error) {
			data, ok := blobs[contentID]
			if !ok {
				return nil, storage.ErrBlobNotFound
			}
			return data, nil
		},
		TotalSizeFunc: func(ctx context.Context) (int64, error) {
			var total int64
			for _, data := range blobs {
				total += int64(len(data))
			}
			return total, nil
		},
	}
}

func newBlobMux(h *BlobHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/blobs", h.Upload)
	mux.HandleFunc("GET /api/v1/blobs/{contentID}", h.Download)
	return mux
}

func TestBlobHandler_Upload(t *testing.T) {
	blobs := newMemBlobs()
	handler := NewBlobHandler(blobs, testLogger(), 0, 0)
	mux := newBlobMux(handler)

	data := []byte("note envelope bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(data))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ContentID(data), resp.ContentID)
	assert.Equal(t, int64(len(data)), resp.SizeBytes)
	assert.False(t, resp.Existed)
}

func TestBlobHandler_Upload_Deduplicates(t *testing.T) {
	blobs := newMemBlobs()
	handler := NewBlobHandler(blobs, testLogger(), 0, 0)
	mux := newBlobMux(handler)

	data := []byte("uploaded twice")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(data)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(data)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Existed)
	assert.Equal(t, ContentID(data), resp.ContentID)
}

func TestBlobHandler_Upload_Empty(t *testing.T) {
	handler := NewBlobHandler(newMemBlobs(), testLogger(), 0, 0)
	mux := newBlobMux(handler)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.ErrCodeInvalidRequest, resp.Error)
}

func TestBlobHandler_Upload_TooLarge(t *testing.T) {
	handler := NewBlobHandler(newMemBlobs(), testLogger(), 16, 0)
	mux := newBlobMux(handler)

	data := bytes.Repeat([]byte("x"), 64)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(data)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.ErrCodeQuotaExceeded, resp.Error)
}

func TestBlobHandler_Upload_QuotaExceeded(t *testing.T) {
	blobs := newMemBlobs()
	handler := NewBlobHandler(blobs, testLogger(), 0, 20)
	mux := newBlobMux(handler)

	first := []byte("fits into the quota")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(first)))
	require.Equal(t, http.StatusCreated, rec.Code)

	second := []byte("does not fit anymore")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(second)))
	require.Equal(t, http.StatusInsufficientStorage, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.ErrCodeQuotaExceeded, resp.Error)

	// Дубликат уже сохраненного контента проходит даже при забитой квоте
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(first)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBlobHandler_Download(t *testing.T) {
	blobs := newMemBlobs()
	handler := NewBlobHandler(blobs, testLogger(), 0, 0)
	mux := newBlobMux(handler)

	data := []byte("stored content")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blobs", bytes.NewReader(data)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blobs/"+ContentID(data), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, data, rec.Body.Bytes())
}

func TestBlobHandler_Download_NotFound(t *testing.T) {
	handler := NewBlobHandler(newMemBlobs(), testLogger(), 0, 0)
	mux := newBlobMux(handler)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blobs/deadbeef", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.ErrCodeNotFound, resp.Error)
}
