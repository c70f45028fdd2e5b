package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/pkg/api"
)

// DefaultMaxBlobBytes максимальный размер одного блоба
const DefaultMaxBlobBytes = 4 << 20 // 4 MiB

// BlobHandler обрабатывает запросы контент-адресуемого хранилища.
// Идентификатор блоба всегда выводится сервером из байтов тела,
// клиентские идентификаторы не принимаются.
type BlobHandler struct {
	storage storage.BlobStorage
	logger  *slog.Logger

	// MaxBlobBytes ограничивает размер одного блоба
	maxBlobBytes int64
	// MaxStorageBytes ограничивает суммарный размер хранилища.
	// 0 означает без ограничения
	maxStorageBytes int64
}

// NewBlobHandler создает новый handler блобов
func NewBlobHandler(blobStorage storage.BlobStorage, logger *slog.Logger, maxBlobBytes, maxStorageBytes int64) *BlobHandler {
	if maxBlobBytes <= 0 {
		maxBlobBytes = DefaultMaxBlobBytes
	}
	return &BlobHandler{
		storage:         blobStorage,
		logger:          logger,
		maxBlobBytes:    maxBlobBytes,
		maxStorageBytes: maxStorageBytes,
	}
}

// ContentID вычисляет контент-идентификатор блоба (hex SHA-256)
func ContentID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Upload обрабатывает POST /api/v1/blobs
func (h *BlobHandler) Upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBlobBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, h.logger, http.StatusRequestEntityTooLarge,
				api.ErrCodeQuotaExceeded, "blob exceeds maximum size")
			return
		}
		h.logger.Warn("failed to read upload body", slog.Any("error", err))
		writeError(w, h.logger, http.StatusBadRequest,
			api.ErrCodeInvalidRequest, "failed to read request body")
		return
	}

	if len(body) == 0 {
		writeError(w, h.logger, http.StatusBadRequest,
			api.ErrCodeInvalidRequest, "blob cannot be empty")
		return
	}

	contentID := ContentID(body)

	if h.maxStorageBytes > 0 {
		total, err := h.storage.TotalSize(r.Context())
		if err != nil {
			h.logger.Error("failed to get storage size", slog.Any("error", err))
			writeError(w, h.logger, http.StatusInternalServerError,
				api.ErrCodeInternal, "failed to check storage quota")
			return
		}
		// Дубликат места не занимает, квота проверяется только для
		// нового контента
		if total+int64(len(body)) > h.maxStorageBytes {
			if _, err := h.storage.GetBlob(r.Context(), contentID); err != nil {
				writeError(w, h.logger, http.StatusInsufficientStorage,
					api.ErrCodeQuotaExceeded, "storage quota exceeded")
				return
			}
		}
	}

	existed, err := h.storage.SaveBlob(r.Context(), contentID, body)
	if err != nil {
		h.logger.Error("failed to save blob", slog.Any("error", err))
		writeError(w, h.logger, http.StatusInternalServerError,
			api.ErrCodeInternal, "failed to save blob")
		return
	}

	h.logger.Info("blob uploaded",
		slog.String("content_id", contentID),
		slog.Int("size", len(body)),
		slog.Bool("existed", existed),
	)

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	writeJSON(w, h.logger, status, api.UploadResponse{
		ContentID: contentID,
		SizeBytes: int64(len(body)),
		Existed:   existed,
	})
}

// Download обрабатывает GET /api/v1/blobs/{contentID}
func (h *BlobHandler) Download(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("contentID")
	if contentID == "" {
		writeError(w, h.logger, http.StatusBadRequest,
			api.ErrCodeInvalidRequest, "content id is required")
		return
	}

	data, err := h.storage.GetBlob(r.Context(), contentID)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			writeError(w, h.logger, http.StatusNotFound,
				api.ErrCodeNotFound, "blob not found")
			return
		}
		h.logger.Error("failed to get blob", slog.Any("error", err))
		writeError(w, h.logger, http.StatusInternalServerError,
			api.ErrCodeInternal, "failed to get blob")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write blob response", slog.Any("error", err))
	}
}
