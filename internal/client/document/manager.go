package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/crdt"
)

//go:generate moq -out manager_mock.go . Manager

// Manager определяет интерфейс менеджера CRDT-реплик заметок.
// Каждая заметка получает свою реплику; локальные правки превращаются
// в дельты и с debounce уходят в очередь синхронизации.
type Manager interface {
	// GetOrCreateReplica возвращает реплику заметки, при первом обращении
	// восстанавливая её из хранилища или засевая из plain-текста заметки
	GetOrCreateReplica(ctx context.Context, noteID string) (*crdt.Document, error)

	// ApplyLocalEdit применяет локальную правку к реплике
	ApplyLocalEdit(ctx context.Context, noteID string, edit Edit) error

	// ApplyRemoteUpdate применяет дельту другой реплики (LWW merge)
	ApplyRemoteUpdate(ctx context.Context, noteID string, update []byte) error

	// Materialize возвращает текущий текст заметки из реплики
	Materialize(ctx context.Context, noteID string) (string, error)

	// OnChange регистрирует подписчика на изменения реплик.
	// Возвращает функцию отписки.
	OnChange(fn func(ChangeEvent)) func()

	// Flush немедленно проталкивает все отложенные debounce-дельты в очередь
	Flush(ctx context.Context) error

	// Destroy останавливает debounce-таймеры, протолкнув остатки
	Destroy()
}

// EnqueueFunc ставит дельту реплики в очередь синхронизации.
// snapshot - материализованный текст после применения дельты.
// Приложение подвешивает сюда syncer.Engine.Enqueue.
type EnqueueFunc func(ctx context.Context, noteID string, update []byte, snapshot string) error

// Edit описывает одну локальную правку документа
type Edit struct {
	// BlockID правимый блок; пустой означает корневой блок
	BlockID string
	// Pos сортируемый ключ позиции для новых блоков
	Pos string
	// Text новое содержимое блока
	Text string
	// Delete помечает блок tombstone'ом вместо правки текста
	Delete bool
	// ReplaceAll заменяет содержимое документа целиком (restore)
	ReplaceAll bool
}

// ChangeEvent описывает изменение реплики
type ChangeEvent struct {
	NoteID string
	Text   string // материализованный текст после изменения
	Remote bool   // true если изменение пришло от другой реплики
}

// Config настройки менеджера
type Config struct {
	// DebounceInterval окно тишины перед отправкой накопленной дельты
	// в очередь. Ноль удобен для тестов - дельта уходит сразу.
	DebounceInterval time.Duration
}

type manager struct {
	replicas storage.ReplicaStorage
	notes    storage.NoteStorage
	metadata storage.MetadataStorage
	enqueue  EnqueueFunc
	logger   *slog.Logger
	cfg      Config

	mu       sync.Mutex
	docs     map[string]*crdt.Document
	clock    *crdt.LamportClock
	pending  map[string][]crdt.Block // накопленные за debounce-окно дельты
	timers   map[string]*time.Timer
	handlers map[int]func(ChangeEvent)
	nextID   int
	closed   bool
}

// NewManager creates a document manager.
// NodeID реплики восстанавливается из metadata, при первом запуске
// генерируется и персистится.
func NewManager(ctx context.Context, replicas storage.ReplicaStorage, notes storage.NoteStorage, metadata storage.MetadataStorage, enqueue EnqueueFunc, cfg Config, logger *slog.Logger) (Manager, error) {
	nodeID, err := metadata.GetNodeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load node id: %w", err)
	}
	if nodeID == "" {
		nodeID = uuid.NewString()
		if err := metadata.SaveNodeID(ctx, nodeID); err != nil {
			return nil, fmt.Errorf("failed to persist node id: %w", err)
		}
		logger.Info("Generated new replica node id", "node_id", nodeID)
	}

	return &manager{
		replicas: replicas,
		notes:    notes,
		metadata: metadata,
		enqueue:  enqueue,
		logger:   logger,
		cfg:      cfg,
		docs:     make(map[string]*crdt.Document),
		clock:    crdt.NewLamportClockWithNodeID(nodeID),
		pending:  make(map[string][]crdt.Block),
		timers:   make(map[string]*time.Timer),
		handlers: make(map[int]func(ChangeEvent)),
	}, nil
}

// GetOrCreateReplica возвращает реплику заметки.
// Порядок восстановления: память -> хранилище реплик -> засев из заметки.
func (m *manager) GetOrCreateReplica(ctx context.Context, noteID string) (*crdt.Document, error) {
	m.mu.Lock()
	if doc, ok := m.docs[noteID]; ok {
		m.mu.Unlock()
		return doc, nil
	}
	m.mu.Unlock()

	doc, err := m.loadOrSeed(ctx, noteID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Параллельный вызов мог успеть раньше
	if existing, ok := m.docs[noteID]; ok {
		return existing, nil
	}
	m.docs[noteID] = doc
	m.clock.Observe(doc.MaxTimestamp())

	return doc, nil
}

func (m *manager) loadOrSeed(ctx context.Context, noteID string) (*crdt.Document, error) {
	state, err := m.replicas.GetReplicaState(ctx, noteID)
	if err == nil {
		doc, err := crdt.DecodeState(noteID, state)
		if err != nil {
			return nil, fmt.Errorf("failed to decode replica state: %w", err)
		}
		return doc, nil
	}
	if !errors.Is(err, storage.ErrReplicaNotFound) {
		return nil, fmt.Errorf("failed to load replica state: %w", err)
	}

	// Реплики еще нет - засеваем из plain-текста заметки
	doc := crdt.NewDocument(noteID)

	note, err := m.notes.GetNote(ctx, noteID)
	switch {
	case err == nil && note.Text != "":
		doc.Seed(note.Text, m.clock.Tick(), m.clock.NodeID())
	case err != nil && !errors.Is(err, storage.ErrNoteNotFound):
		return nil, fmt.Errorf("failed to load note for seeding: %w", err)
	}

	if err := m.persist(ctx, doc); err != nil {
		return nil, err
	}

	m.logger.Debug("Replica seeded", "note_id", noteID, "empty", doc.Empty())

	return doc, nil
}

// ApplyLocalEdit applies a local edit, persists the replica and schedules
// the resulting delta for sync
func (m *manager) ApplyLocalEdit(ctx context.Context, noteID string, edit Edit) error {
	doc, err := m.GetOrCreateReplica(ctx, noteID)
	if err != nil {
		return err
	}

	blocks, err := m.editBlocks(doc, edit)
	if err != nil {
		return err
	}

	accepted := doc.Apply(blocks...)
	if len(accepted) == 0 {
		return nil // правка ничего не изменила
	}

	if err := m.persist(ctx, doc); err != nil {
		return err
	}

	m.scheduleDelta(ctx, noteID, accepted)
	m.notifyChange(ChangeEvent{NoteID: noteID, Text: doc.Materialize()})

	return nil
}

// editBlocks превращает правку в версии блоков с новым Lamport timestamp
func (m *manager) editBlocks(doc *crdt.Document, edit Edit) ([]crdt.Block, error) {
	if edit.ReplaceAll {
		ts := m.clock.Tick()
		nodeID := m.clock.NodeID()

		// Все живые блоки кроме корневого превращаются в tombstone,
		// новый текст целиком ложится в корневой блок
		var blocks []crdt.Block
		for _, b := range doc.Blocks() {
			if b.Deleted || b.ID == crdt.RootBlockID {
				continue
			}
			b.Deleted = true
			b.Timestamp = ts
			b.NodeID = nodeID
			blocks = append(blocks, b)
		}
		blocks = append(blocks, crdt.Block{
			ID:        crdt.RootBlockID,
			Pos:       "0",
			Text:      edit.Text,
			NodeID:    nodeID,
			Timestamp: ts,
		})
		return blocks, nil
	}

	blockID := edit.BlockID
	if blockID == "" {
		blockID = crdt.RootBlockID
	}

	pos := edit.Pos
	for _, b := range doc.Blocks() {
		if b.ID == blockID {
			if pos == "" {
				pos = b.Pos
			}
			break
		}
	}
	if pos == "" {
		if blockID == crdt.RootBlockID {
			pos = "0"
		} else {
			return nil, fmt.Errorf("position required for new block %s", blockID)
		}
	}

	return []crdt.Block{{
		ID:        blockID,
		Pos:       pos,
		Text:      edit.Text,
		NodeID:    m.clock.NodeID(),
		Timestamp: m.clock.Tick(),
		Deleted:   edit.Delete,
	}}, nil
}

// ApplyRemoteUpdate merges a delta from another replica
func (m *manager) ApplyRemoteUpdate(ctx context.Context, noteID string, update []byte) error {
	doc, err := m.GetOrCreateReplica(ctx, noteID)
	if err != nil {
		return err
	}

	maxTS, changed, err := doc.Merge(update)
	if err != nil {
		return fmt.Errorf("failed to merge remote update: %w", err)
	}

	// Часы продвигаются даже если дельта ничего не изменила
	m.clock.Observe(maxTS)

	if !changed {
		return nil
	}

	if err := m.persist(ctx, doc); err != nil {
		return err
	}

	m.notifyChange(ChangeEvent{NoteID: noteID, Text: doc.Materialize(), Remote: true})

	return nil
}

// Materialize возвращает текущий текст заметки
func (m *manager) Materialize(ctx context.Context, noteID string) (string, error) {
	doc, err := m.GetOrCreateReplica(ctx, noteID)
	if err != nil {
		return "", err
	}
	return doc.Materialize(), nil
}

// OnChange регистрирует подписчика на изменения
func (m *manager) OnChange(fn func(ChangeEvent)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.handlers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.handlers, id)
	}
}

func (m *manager) notifyChange(event ChangeEvent) {
	m.mu.Lock()
	handlers := make([]func(ChangeEvent), 0, len(m.handlers))
	for _, fn := range m.handlers {
		handlers = append(handlers, fn)
	}
	m.mu.Unlock()

	for _, fn := range handlers {
		fn(event)
	}
}

func (m *manager) persist(ctx context.Context, doc *crdt.Document) error {
	state, err := doc.EncodeState()
	if err != nil {
		return fmt.Errorf("failed to encode replica state: %w", err)
	}
	if err := m.replicas.SaveReplicaState(ctx, doc.NoteID(), state); err != nil {
		return fmt.Errorf("failed to persist replica state: %w", err)
	}
	return nil
}

// scheduleDelta копит дельту и взводит debounce-таймер.
// Шквал правок одной заметки уезжает в очередь одной дельтой.
func (m *manager) scheduleDelta(ctx context.Context, noteID string, blocks []crdt.Block) {
	m.mu.Lock()

	m.pending[noteID] = append(m.pending[noteID], blocks...)

	if m.cfg.DebounceInterval <= 0 {
		m.mu.Unlock()
		m.flushNote(ctx, noteID)
		return
	}

	if timer, ok := m.timers[noteID]; ok {
		timer.Reset(m.cfg.DebounceInterval)
		m.mu.Unlock()
		return
	}

	m.timers[noteID] = time.AfterFunc(m.cfg.DebounceInterval, func() {
		// Таймер живет дольше вызова - работаем от собственного контекста
		m.flushNote(context.Background(), noteID)
	})
	m.mu.Unlock()
}

// flushNote отправляет накопленную дельту заметки в очередь
func (m *manager) flushNote(ctx context.Context, noteID string) {
	m.mu.Lock()
	blocks := m.pending[noteID]
	delete(m.pending, noteID)
	if timer, ok := m.timers[noteID]; ok {
		timer.Stop()
		delete(m.timers, noteID)
	}
	doc := m.docs[noteID]
	m.mu.Unlock()

	if len(blocks) == 0 || doc == nil {
		return
	}

	update, err := crdt.EncodeUpdate(blocks)
	if err != nil {
		m.logger.Error("Failed to encode delta", "note_id", noteID, "error", err)
		return
	}

	if err := m.enqueue(ctx, noteID, update, doc.Materialize()); err != nil {
		m.logger.Error("Failed to enqueue delta", "note_id", noteID, "error", err)
		return
	}

	m.logger.Debug("Delta enqueued", "note_id", noteID, "blocks", len(blocks))
}

// Flush проталкивает все отложенные дельты немедленно
func (m *manager) Flush(ctx context.Context) error {
	m.mu.Lock()
	noteIDs := make([]string, 0, len(m.pending))
	for noteID := range m.pending {
		noteIDs = append(noteIDs, noteID)
	}
	m.mu.Unlock()

	for _, noteID := range noteIDs {
		m.flushNote(ctx, noteID)
	}
	return nil
}

// Destroy stops debounce timers, flushing whatever is still pending
func (m *manager) Destroy() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	for noteID, timer := range m.timers {
		timer.Stop()
		delete(m.timers, noteID)
	}
	m.mu.Unlock()

	if err := m.Flush(context.Background()); err != nil {
		m.logger.Warn("Failed to flush deltas on destroy", "error", err)
	}
}
