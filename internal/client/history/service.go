package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/document"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс менеджера истории версий.
// История append-only: версии создаются и читаются, но никогда
// не изменяются. Restore не переписывает историю, а добавляет
// новую версию поверх.
type Service interface {
	// RecordVersion фиксирует снапшот заметки в истории.
	// Если контент совпадает с последней версией, возвращается она же.
	RecordVersion(ctx context.Context, noteID string, snapshot []byte, changeType models.ChangeType) (*models.Version, error)

	// ListVersions возвращает версии заметки от старой к новой
	ListVersions(ctx context.Context, noteID string) ([]*models.Version, error)

	// GetVersionContent возвращает контент версии (кэш, затем удаленное хранилище)
	GetVersionContent(ctx context.Context, versionID string) ([]byte, error)

	// CompareVersions считает разницу между двумя версиями заметки
	CompareVersions(ctx context.Context, noteID, versionA, versionB string) (models.DiffStats, error)

	// RestoreVersion восстанавливает заметку к состоянию версии.
	// Возвращает новую запись истории с changeType=restored,
	// либо nil если заметка уже в этом состоянии.
	RestoreVersion(ctx context.Context, noteID, versionID string) (*models.Version, error)
}

type service struct {
	versions  storage.VersionStorage
	content   storage.ContentStorage
	documents document.Manager
	apiClient httpClient.ClientAPI
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a version history service
func NewService(versions storage.VersionStorage, content storage.ContentStorage, documents document.Manager, apiClient httpClient.ClientAPI, logger *slog.Logger) Service {
	return &service{
		versions:  versions,
		content:   content,
		documents: documents,
		apiClient: apiClient,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ContentHash возвращает hex SHA-256 снапшота - ключ контента в истории
func ContentHash(snapshot []byte) string {
	sum := sha256.Sum256(snapshot)
	return hex.EncodeToString(sum[:])
}

// RecordVersion фиксирует снапшот в истории.
// Дедупликация по хэшу: подряд идущие одинаковые снапшоты не плодят версий.
func (s *service) RecordVersion(ctx context.Context, noteID string, snapshot []byte, changeType models.ChangeType) (*models.Version, error) {
	if noteID == "" {
		return nil, fmt.Errorf("note id cannot be empty")
	}

	hash := ContentHash(snapshot)

	latest, err := s.versions.LatestVersion(ctx, noteID)
	if err != nil && !errors.Is(err, storage.ErrVersionNotFound) {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	if latest != nil && latest.ContentHash == hash {
		s.logger.Debug("Snapshot unchanged, reusing version",
			"note_id", noteID,
			"version_id", latest.ID)
		return latest, nil
	}

	// Разница считается против контента предыдущей версии
	var stats models.DiffStats
	var changeTypeResolved = changeType
	if latest != nil {
		previous, err := s.loadContent(ctx, latest.ContentHash)
		if err != nil {
			s.logger.Warn("Previous version content unavailable, recording without diff",
				"note_id", noteID,
				"error", err)
		} else {
			stats = computeDiffStats(string(previous), string(snapshot))
		}
	} else if changeTypeResolved == "" {
		changeTypeResolved = models.ChangeTypeCreated
	}
	if changeTypeResolved == "" {
		changeTypeResolved = models.ChangeTypeEdited
	}

	if err := s.content.PutContent(ctx, hash, snapshot); err != nil {
		return nil, fmt.Errorf("failed to cache version content: %w", err)
	}

	// CreatedAt строго возрастает внутри заметки, даже если часы
	// системы дали тот же момент или ушли назад
	createdAt := s.now()
	if latest != nil && !createdAt.After(latest.CreatedAt) {
		createdAt = latest.CreatedAt.Add(time.Nanosecond)
	}

	version := &models.Version{
		ID:          uuid.NewString(),
		NoteID:      noteID,
		ChangeType:  changeTypeResolved,
		ContentHash: hash,
		DiffStats:   stats,
		SizeBytes:   int64(len(snapshot)),
		CreatedAt:   createdAt,
	}

	if err := s.versions.SaveVersion(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to save version: %w", err)
	}

	s.logger.Debug("Version recorded",
		"note_id", noteID,
		"version_id", version.ID,
		"change_type", version.ChangeType,
		"size_bytes", version.SizeBytes)

	return version, nil
}

// ListVersions возвращает версии заметки от старой к новой
func (s *service) ListVersions(ctx context.Context, noteID string) ([]*models.Version, error) {
	return s.versions.ListVersions(ctx, noteID)
}

// GetVersionContent возвращает контент версии
func (s *service) GetVersionContent(ctx context.Context, versionID string) ([]byte, error) {
	version, err := s.versions.GetVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}
	return s.loadContent(ctx, version.ContentHash)
}

// loadContent достает контент по хэшу: сперва локальный кэш,
// затем удаленное хранилище (с докэшированием)
func (s *service) loadContent(ctx context.Context, contentHash string) ([]byte, error) {
	data, err := s.content.GetContent(ctx, contentHash)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, storage.ErrContentNotFound) {
		return nil, fmt.Errorf("failed to read content cache: %w", err)
	}

	data, err = s.apiClient.Fetch(ctx, contentHash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content %s: %w", contentHash, err)
	}

	if err := s.content.PutContent(ctx, contentHash, data); err != nil {
		s.logger.Warn("Failed to cache fetched content",
			"content_hash", contentHash,
			"error", err)
	}

	return data, nil
}

// CompareVersions считает DiffStats между двумя версиями заметки
func (s *service) CompareVersions(ctx context.Context, noteID, versionA, versionB string) (models.DiffStats, error) {
	if versionA == versionB {
		// Сравнение версии с собой - нулевая разница без загрузки контента
		return models.DiffStats{}, nil
	}

	a, err := s.versions.GetVersion(ctx, versionA)
	if err != nil {
		return models.DiffStats{}, err
	}
	b, err := s.versions.GetVersion(ctx, versionB)
	if err != nil {
		return models.DiffStats{}, err
	}
	if a.NoteID != noteID || b.NoteID != noteID {
		return models.DiffStats{}, fmt.Errorf("versions belong to different notes")
	}

	contentA, err := s.loadContent(ctx, a.ContentHash)
	if err != nil {
		return models.DiffStats{}, err
	}
	contentB, err := s.loadContent(ctx, b.ContentHash)
	if err != nil {
		return models.DiffStats{}, err
	}

	return computeDiffStats(string(contentA), string(contentB)), nil
}

// RestoreVersion восстанавливает заметку к состоянию версии через
// replace-all правку реплики. История не переписывается: поверх
// добавляется новая версия с changeType=restored.
func (s *service) RestoreVersion(ctx context.Context, noteID, versionID string) (*models.Version, error) {
	version, err := s.versions.GetVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if version.NoteID != noteID {
		return nil, fmt.Errorf("version %s does not belong to note %s", versionID, noteID)
	}

	snapshot, err := s.loadContent(ctx, version.ContentHash)
	if err != nil {
		return nil, err
	}

	current, err := s.documents.Materialize(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if current == string(snapshot) {
		s.logger.Debug("Note already at requested version, nothing to restore",
			"note_id", noteID,
			"version_id", versionID)
		return nil, nil
	}

	err = s.documents.ApplyLocalEdit(ctx, noteID, document.Edit{
		ReplaceAll: true,
		Text:       string(snapshot),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply restored content: %w", err)
	}

	restored, err := s.RecordVersion(ctx, noteID, snapshot, models.ChangeTypeRestored)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Version restored",
		"note_id", noteID,
		"from_version", versionID,
		"new_version", restored.ID)

	return restored, nil
}
