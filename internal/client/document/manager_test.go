package document

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/crdt"
	"github.com/iudanet/notesync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemReplicas собирает ReplicaStorage mock поверх map
func newMemReplicas() *storage.ReplicaStorageMock {
	var mu sync.Mutex
	states := make(map[string][]byte)

	return &storage.ReplicaStorageMock{
		SaveReplicaStateFunc: func(ctx context.Context, noteID string, state []byte) error {
			mu.Lock()
			defer mu.Unlock()
			states[noteID] = append([]byte(nil), state...)
			return nil
		},
		GetReplicaStateFunc: func(ctx context.Context, noteID string) ([]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			state, ok := states[noteID]
			if !ok {
				return nil, storage.ErrReplicaNotFound
			}
			return append([]byte(nil), state...), nil
		},
		DeleteReplicaStateFunc: func(ctx context.Context, noteID string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(states, noteID)
			return nil
		},
	}
}

func newMemNotes(notes ...*models.Note) *storage.NoteStorageMock {
	var mu sync.Mutex
	byID := make(map[string]*models.Note)
	for _, n := range notes {
		byID[n.ID] = n
	}

	return &storage.NoteStorageMock{
		GetNoteFunc: func(ctx context.Context, id string) (*models.Note, error) {
			mu.Lock()
			defer mu.Unlock()
			n, ok := byID[id]
			if !ok {
				return nil, storage.ErrNoteNotFound
			}
			return n, nil
		},
		SaveNoteFunc: func(ctx context.Context, note *models.Note) error {
			mu.Lock()
			defer mu.Unlock()
			byID[note.ID] = note
			return nil
		},
	}
}

func newMemMetadata() *storage.MetadataStorageMock {
	var mu sync.Mutex
	var nodeID string

	return &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return nodeID, nil
		},
		SaveNodeIDFunc: func(ctx context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			nodeID = id
			return nil
		},
	}
}

type enqueueRecorder struct {
	mu    sync.Mutex
	calls []enqueuedDelta
}

type enqueuedDelta struct {
	noteID   string
	update   []byte
	snapshot string
}

func (r *enqueueRecorder) fn(ctx context.Context, noteID string, update []byte, snapshot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, enqueuedDelta{noteID: noteID, update: update, snapshot: snapshot})
	return nil
}

func (r *enqueueRecorder) list() []enqueuedDelta {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]enqueuedDelta{}, r.calls...)
}

func newTestManager(t *testing.T, notes *storage.NoteStorageMock, cfg Config) (Manager, *storage.ReplicaStorageMock, *enqueueRecorder) {
	t.Helper()
	replicas := newMemReplicas()
	rec := &enqueueRecorder{}
	mgr, err := NewManager(context.Background(), replicas, notes, newMemMetadata(), rec.fn, cfg, testLogger())
	require.NoError(t, err)
	return mgr, replicas, rec
}

func TestNewManager_PersistsNodeID(t *testing.T) {
	ctx := context.Background()
	metadata := newMemMetadata()

	_, err := NewManager(ctx, newMemReplicas(), newMemNotes(), metadata, (&enqueueRecorder{}).fn, Config{}, testLogger())
	require.NoError(t, err)

	nodeID, err := metadata.GetNodeID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, nodeID)

	// Повторное создание менеджера переиспользует node id
	_, err = NewManager(ctx, newMemReplicas(), newMemNotes(), metadata, (&enqueueRecorder{}).fn, Config{}, testLogger())
	require.NoError(t, err)

	again, err := metadata.GetNodeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, nodeID, again)
}

func TestManager_GetOrCreateReplica_SeedsFromNote(t *testing.T) {
	ctx := context.Background()
	notes := newMemNotes(&models.Note{ID: "note-1", Title: "t", Text: "hello world"})
	mgr, _, _ := newTestManager(t, notes, Config{})

	doc, err := mgr.GetOrCreateReplica(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "hello world", doc.Materialize())

	// Повторный вызов возвращает ту же реплику
	again, err := mgr.GetOrCreateReplica(ctx, "note-1")
	require.NoError(t, err)
	assert.Same(t, doc, again)
}

func TestManager_GetOrCreateReplica_EmptyForUnknownNote(t *testing.T) {
	ctx := context.Background()
	mgr, _, _ := newTestManager(t, newMemNotes(), Config{})

	doc, err := mgr.GetOrCreateReplica(ctx, "note-absent")
	require.NoError(t, err)
	assert.True(t, doc.Empty())
	assert.Empty(t, doc.Materialize())
}

func TestManager_GetOrCreateReplica_RestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	notes := newMemNotes(&models.Note{ID: "note-1", Text: "seeded"})
	replicas := newMemReplicas()
	metadata := newMemMetadata()

	mgr, err := NewManager(ctx, replicas, notes, metadata, (&enqueueRecorder{}).fn, Config{}, testLogger())
	require.NoError(t, err)

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "edited text"}))

	// Новый менеджер поверх тех же хранилищ видит отредактированное
	// состояние реплики, а не plain-текст заметки
	mgr2, err := NewManager(ctx, replicas, notes, metadata, (&enqueueRecorder{}).fn, Config{}, testLogger())
	require.NoError(t, err)

	text, err := mgr2.Materialize(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "edited text", text)
}

func TestManager_ApplyLocalEdit_EnqueuesDelta(t *testing.T) {
	ctx := context.Background()
	notes := newMemNotes(&models.Note{ID: "note-1", Text: "before"})
	mgr, _, rec := newTestManager(t, notes, Config{}) // debounce 0: дельта уходит сразу

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "after"}))

	calls := rec.list()
	require.Len(t, calls, 1)
	assert.Equal(t, "note-1", calls[0].noteID)
	assert.Equal(t, "after", calls[0].snapshot)

	blocks, err := crdt.DecodeUpdate(calls[0].update)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, crdt.RootBlockID, blocks[0].ID)
	assert.Equal(t, "after", blocks[0].Text)
}

func TestManager_ApplyLocalEdit_NoopProducesNoDelta(t *testing.T) {
	ctx := context.Background()
	mgr, _, rec := newTestManager(t, newMemNotes(&models.Note{ID: "note-1", Text: "same"}), Config{})

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "changed"}))
	require.Len(t, rec.list(), 1)

	// Правка, проигравшая LWW своей же реплике, невозможна, но дельта
	// с уже примененными блоками не плодит повторных отправок
	doc, err := mgr.GetOrCreateReplica(ctx, "note-1")
	require.NoError(t, err)
	blocks := doc.Blocks()
	accepted := doc.Apply(blocks...)
	assert.Empty(t, accepted)
}

func TestManager_Debounce_CollapsesBurst(t *testing.T) {
	ctx := context.Background()
	notes := newMemNotes(&models.Note{ID: "note-1", Text: ""})
	mgr, _, rec := newTestManager(t, notes, Config{DebounceInterval: 50 * time.Millisecond})

	// Шквал правок одной заметки
	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "v1"}))
	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "v2"}))
	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "v3"}))

	// До истечения окна тишины дельты не уходят
	assert.Empty(t, rec.list())

	assert.Eventually(t, func() bool {
		return len(rec.list()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	calls := rec.list()
	assert.Equal(t, "v3", calls[0].snapshot)

	// Дельта содержит все накопленные версии корневого блока
	blocks, err := crdt.DecodeUpdate(calls[0].update)
	require.NoError(t, err)
	assert.Len(t, blocks, 3)
}

func TestManager_Flush_DrainsPendingImmediately(t *testing.T) {
	ctx := context.Background()
	mgr, _, rec := newTestManager(t, newMemNotes(), Config{DebounceInterval: time.Hour})

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "draft"}))
	require.Empty(t, rec.list())

	require.NoError(t, mgr.Flush(ctx))
	assert.Len(t, rec.list(), 1)
}

func TestManager_Destroy_FlushesPending(t *testing.T) {
	ctx := context.Background()
	mgr, _, rec := newTestManager(t, newMemNotes(), Config{DebounceInterval: time.Hour})

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "draft"}))
	require.Empty(t, rec.list())

	mgr.Destroy()
	assert.Len(t, rec.list(), 1)

	mgr.Destroy() // idempotent
	assert.Len(t, rec.list(), 1)
}

func TestManager_ApplyRemoteUpdate_MergesAndNotifies(t *testing.T) {
	ctx := context.Background()
	mgr, _, _ := newTestManager(t, newMemNotes(&models.Note{ID: "note-1", Text: "local"}), Config{})

	var events []ChangeEvent
	mgr.OnChange(func(e ChangeEvent) {
		events = append(events, e)
	})

	// Дельта от "другой реплики" с заведомо большим timestamp
	update, err := crdt.EncodeUpdate([]crdt.Block{{
		ID:        crdt.RootBlockID,
		Pos:       "0",
		Text:      "remote wins",
		NodeID:    "node-remote",
		Timestamp: 1000,
	}})
	require.NoError(t, err)

	require.NoError(t, mgr.ApplyRemoteUpdate(ctx, "note-1", update))

	text, err := mgr.Materialize(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "remote wins", text)

	require.Len(t, events, 1)
	assert.True(t, events[0].Remote)
	assert.Equal(t, "remote wins", events[0].Text)

	// Повторное применение той же дельты идемпотентно: событий больше нет
	require.NoError(t, mgr.ApplyRemoteUpdate(ctx, "note-1", update))
	assert.Len(t, events, 1)

	// Локальная правка после merge получает timestamp выше удаленного
	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "local again"}))
	text, err = mgr.Materialize(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "local again", text)
}

func TestManager_ReplaceAll_TombstonesExtraBlocks(t *testing.T) {
	ctx := context.Background()
	mgr, _, _ := newTestManager(t, newMemNotes(), Config{})

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{Text: "line one"}))
	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{BlockID: "b2", Pos: "1", Text: "line two"}))

	text, err := mgr.Materialize(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)

	require.NoError(t, mgr.ApplyLocalEdit(ctx, "note-1", Edit{ReplaceAll: true, Text: "restored content"}))

	text, err = mgr.Materialize(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "restored content", text)
}

func TestManager_TwoReplicasConverge(t *testing.T) {
	ctx := context.Background()

	recA := &enqueueRecorder{}
	mgrA, err := NewManager(ctx, newMemReplicas(), newMemNotes(), newMemMetadata(), recA.fn, Config{}, testLogger())
	require.NoError(t, err)

	recB := &enqueueRecorder{}
	mgrB, err := NewManager(ctx, newMemReplicas(), newMemNotes(), newMemMetadata(), recB.fn, Config{}, testLogger())
	require.NoError(t, err)

	// Конкурентные правки на двух репликах
	require.NoError(t, mgrA.ApplyLocalEdit(ctx, "note-1", Edit{Text: "from A"}))
	require.NoError(t, mgrB.ApplyLocalEdit(ctx, "note-1", Edit{BlockID: "extra", Pos: "1", Text: "from B"}))

	callsA := recA.list()
	callsB := recB.list()
	require.Len(t, callsA, 1)
	require.Len(t, callsB, 1)

	// Обмен дельтами в разном порядке
	require.NoError(t, mgrA.ApplyRemoteUpdate(ctx, "note-1", callsB[0].update))
	require.NoError(t, mgrB.ApplyRemoteUpdate(ctx, "note-1", callsA[0].update))

	textA, err := mgrA.Materialize(ctx, "note-1")
	require.NoError(t, err)
	textB, err := mgrB.Materialize(ctx, "note-1")
	require.NoError(t, err)

	// Реплики сошлись к одному состоянию
	assert.Equal(t, textA, textB)
	assert.Contains(t, textA, "from B")
}
