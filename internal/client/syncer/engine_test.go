package syncer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/connectivity"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemQueue собирает QueueStorage mock поверх in-memory map
func newMemQueue() *storage.QueueStorageMock {
	var mu sync.Mutex
	ops := make(map[string]*models.QueuedOperation)

	return &storage.QueueStorageMock{
		SaveOperationFunc: func(ctx context.Context, op *models.QueuedOperation) error {
			mu.Lock()
			defer mu.Unlock()
			ops[op.ID] = op.Clone()
			return nil
		},
		GetOperationFunc: func(ctx context.Context, id string) (*models.QueuedOperation, error) {
			mu.Lock()
			defer mu.Unlock()
			op, ok := ops[id]
			if !ok {
				return nil, storage.ErrOperationNotFound
			}
			return op.Clone(), nil
		},
		ListOperationsFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			mu.Lock()
			defer mu.Unlock()
			list := make([]*models.QueuedOperation, 0, len(ops))
			for _, op := range ops {
				list = append(list, op.Clone())
			}
			return list, nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := ops[id]; !ok {
				return storage.ErrOperationNotFound
			}
			delete(ops, id)
			return nil
		},
		ClearOperationsFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			ops = make(map[string]*models.QueuedOperation)
			return nil
		},
	}
}

// newStatusMock собирает connectivity mock с управляемым статусом
func newStatusMock(initial models.ConnectionStatus) (*connectivity.MonitorMock, func(models.ConnectionStatus)) {
	var mu sync.Mutex
	status := initial
	var callbacks []func(models.ConnectivityEvent)

	mock := &connectivity.MonitorMock{
		StatusFunc: func() models.ConnectionStatus {
			mu.Lock()
			defer mu.Unlock()
			return status
		},
		OnStatusChangeFunc: func(fn func(models.ConnectivityEvent)) func() {
			mu.Lock()
			defer mu.Unlock()
			callbacks = append(callbacks, fn)
			return func() {}
		},
	}

	setStatus := func(next models.ConnectionStatus) {
		mu.Lock()
		prev := status
		status = next
		cbs := append([]func(models.ConnectivityEvent){}, callbacks...)
		mu.Unlock()

		for _, fn := range cbs {
			fn(models.ConnectivityEvent{
				Timestamp: time.Now().UTC(),
				Status:    next,
				Previous:  prev,
			})
		}
	}

	return mock, setStatus
}

// testClock - управляемые часы для проверки backoff-окон
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now().UTC()}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestEngine(t *testing.T, queue storage.QueueStorage, apiMock httpClient.ClientAPI, statusMock StatusProvider, cfg Config) (*engine, *testClock) {
	t.Helper()
	clock := newTestClock()
	eng := NewEngine(queue, apiMock, statusMock, cfg, testLogger()).(*engine)
	eng.now = clock.Now
	return eng, clock
}

func savePayload(t *testing.T, noteID, text string) []byte {
	t.Helper()
	payload, err := models.EncodePayload(models.SavePayload{
		Note: models.Note{ID: noteID, Title: "t", Text: text},
	})
	require.NoError(t, err)
	return payload
}

func deletePayload(t *testing.T, noteID string) []byte {
	t.Helper()
	payload, err := models.EncodePayload(models.DeletePayload{
		NoteID:    noteID,
		DeletedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return payload
}

func TestEngine_Enqueue_Validation(t *testing.T) {
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), &httpClient.ClientAPIMock{}, statusMock, Config{})
	ctx := context.Background()

	tests := []struct {
		name string
		spec OperationSpec
	}{
		{
			name: "empty note id",
			spec: OperationSpec{Type: models.OperationSave, Payload: savePayload(t, "note-1", "x")},
		},
		{
			name: "unknown type",
			spec: OperationSpec{NoteID: "note-1", Type: "rename", Payload: []byte(`{}`)},
		},
		{
			name: "unknown priority",
			spec: OperationSpec{NoteID: "note-1", Type: models.OperationSave, Priority: "urgent", Payload: savePayload(t, "note-1", "x")},
		},
		{
			name: "empty payload",
			spec: OperationSpec{NoteID: "note-1", Type: models.OperationSave},
		},
		{
			name: "malformed payload",
			spec: OperationSpec{NoteID: "note-1", Type: models.OperationSave, Payload: []byte(`{broken`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Enqueue(ctx, tt.spec)
			assert.Error(t, err)
		})
	}

	// Невалидные спеки не должны были попасть в очередь
	ops, err := eng.GetQueuedOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestEngine_Enqueue_Defaults(t *testing.T) {
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), &httpClient.ClientAPIMock{}, statusMock, Config{})

	op, err := eng.Enqueue(context.Background(), OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, op.ID)
	assert.Equal(t, models.PriorityNormal, op.Priority)
	assert.Equal(t, models.OperationStatusPending, op.Status)
	assert.Equal(t, models.DefaultMaxRetries, op.MaxRetries)
	assert.Zero(t, op.RetryCount)
}

func TestEngine_Enqueue_CollapsesSameNoteAndType(t *testing.T) {
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, clock := newTestEngine(t, newMemQueue(), &httpClient.ClientAPIMock{}, statusMock, Config{})
	ctx := context.Background()

	first, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "draft"),
	})
	require.NoError(t, err)

	clock.Advance(time.Second)

	second, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:   "note-1",
		Type:     models.OperationSave,
		Priority: models.PriorityHigh,
		Payload:  savePayload(t, "note-1", "final"),
	})
	require.NoError(t, err)

	// Схлопнулись в одну операцию: место в очереди прежнее, payload новый
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	assert.Equal(t, savePayload(t, "note-1", "final"), second.Payload)
	assert.Equal(t, models.PriorityHigh, second.Priority)

	ops, err := eng.GetQueuedOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}

func TestEngine_Enqueue_NoCollapseAcrossTypes(t *testing.T) {
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), &httpClient.ClientAPIMock{}, statusMock, Config{})
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	_, err = eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationDelete,
		Payload: deletePayload(t, "note-1"),
	})
	require.NoError(t, err)

	// Разные заметки тоже не схлопываются
	_, err = eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-2",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-2", "y"),
	})
	require.NoError(t, err)

	ops, err := eng.GetQueuedOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 3)
}

func TestEngine_ProcessQueue_SkipsWhenOffline(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			t.Fatal("upload must not be called while offline")
			return "", nil
		},
	}
	statusMock, _ := newStatusMock(models.StatusOffline)
	eng, _ := newTestEngine(t, newMemQueue(), apiMock, statusMock, Config{})
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)

	pending, err := eng.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestEngine_ProcessQueue_DeliversAndDrains(t *testing.T) {
	var uploaded [][]byte
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			uploaded = append(uploaded, data)
			return httpClient.ContentID(data), nil
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)

	var hooked []string
	cfg := Config{
		UploadedFunc: func(op *models.QueuedOperation, contentID string) {
			hooked = append(hooked, op.NoteID+":"+string(op.Type))
		},
	}
	eng, _ := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Success)
	assert.Equal(t, httpClient.ContentID(uploaded[0]), results[0].ContentID)
	assert.Equal(t, []string{"note-1:save"}, hooked)

	// Доставленная операция покидает очередь
	ops, err := eng.GetQueuedOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestEngine_ProcessQueue_PriorityOrder(t *testing.T) {
	var order []string
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			return httpClient.ContentID(data), nil
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	cfg := Config{
		UploadedFunc: func(op *models.QueuedOperation, contentID string) {
			order = append(order, op.NoteID)
		},
	}
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	// Ставим в порядке low, normal, critical - обрабатываться должны наоборот
	specs := []struct {
		noteID   string
		priority models.Priority
	}{
		{"note-low", models.PriorityLow},
		{"note-normal", models.PriorityNormal},
		{"note-critical", models.PriorityCritical},
	}
	for _, s := range specs {
		_, err := eng.Enqueue(ctx, OperationSpec{
			NoteID:   s.noteID,
			Type:     models.OperationSave,
			Priority: s.priority,
			Payload:  savePayload(t, s.noteID, "x"),
		})
		require.NoError(t, err)
		clock.Advance(time.Millisecond)
	}

	_, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"note-critical", "note-normal", "note-low"}, order)
}

func TestEngine_ProcessQueue_PerNoteFIFO(t *testing.T) {
	var order []models.OperationType
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			return httpClient.ContentID(data), nil
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	cfg := Config{
		UploadedFunc: func(op *models.QueuedOperation, contentID string) {
			order = append(order, op.Type)
		},
	}
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	// save поставлен раньше с низким приоритетом, delete позже с критическим.
	// Для одной заметки порядок постановки важнее приоритета:
	// delete не должен уехать раньше save.
	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:   "note-1",
		Type:     models.OperationSave,
		Priority: models.PriorityLow,
		Payload:  savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	clock.Advance(time.Second)

	_, err = eng.Enqueue(ctx, OperationSpec{
		NoteID:   "note-1",
		Type:     models.OperationDelete,
		Priority: models.PriorityCritical,
		Payload:  deletePayload(t, "note-1"),
	})
	require.NoError(t, err)

	_, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.OperationType{models.OperationSave, models.OperationDelete}, order)
}

func TestEngine_ProcessQueue_TransientRetryWithBackoff(t *testing.T) {
	var attempts int
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			attempts++
			return "", &httpClient.TransientError{Err: errors.New("connection reset")}
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	cfg := Config{BackoffBase: 2 * time.Second, BackoffMax: time.Minute}
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.False(t, results[0].Permanent)
	assert.Equal(t, 1, attempts)

	// Backoff-окно (base * 2^1 = 4s) еще не истекло - операция не готова
	results, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, attempts)

	// После истечения окна операция ретраится
	clock.Advance(5 * time.Second)
	results, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, attempts)
}

func TestEngine_ProcessQueue_RetriesExhausted(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			return "", &httpClient.TransientError{Err: errors.New("timeout")}
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	cfg := Config{BackoffBase: time.Second, BackoffMax: time.Minute}
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:     "note-1",
		Type:       models.OperationSave,
		Payload:    savePayload(t, "note-1", "x"),
		MaxRetries: 2,
	})
	require.NoError(t, err)

	// Первая неудача - ретрай, вторая - исчерпание бюджета
	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Permanent)

	clock.Advance(time.Hour)
	results, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Permanent)

	failed, err := eng.FailedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	pending, err := eng.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)

	// Упавшие операции не участвуют в проходах
	clock.Advance(time.Hour)
	results, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)

	// retry возвращает их в очередь со свежим бюджетом
	requeued, err := eng.RetryFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)

	pending, err = eng.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestEngine_ProcessQueue_ValidationFailsPermanently(t *testing.T) {
	var attempts int
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			attempts++
			return "", &httpClient.ValidationError{Err: errors.New("payload rejected")}
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, Config{})
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Permanent)

	// Permanent ошибка не ретраится даже спустя время
	clock.Advance(time.Hour)
	results, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, attempts)
}

func TestEngine_ProcessQueue_QuotaKeepsOperationQueued(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			return "", &httpClient.QuotaError{Err: errors.New("storage full")}
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), apiMock, statusMock, Config{})
	ctx := context.Background()

	queued, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.False(t, results[0].Permanent)

	// Операция остается pending с флагом квоты, бюджет повторов не тронут
	op, err := eng.queue.GetOperation(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationStatusPending, op.Status)
	assert.True(t, op.QuotaFlag)
	assert.Zero(t, op.RetryCount)
}

func TestEngine_ProcessQueue_ConflictGetsExtraRetry(t *testing.T) {
	var attempts int
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			attempts++
			return "", &httpClient.ConflictError{Err: errors.New("write rejected")}
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	cfg := Config{BackoffBase: time.Second, BackoffMax: time.Minute}
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	// С transient бюджетом 1 конфликт получает 1+1 попытки
	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:     "note-1",
		Type:       models.OperationSave,
		Payload:    savePayload(t, "note-1", "x"),
		MaxRetries: 1,
	})
	require.NoError(t, err)

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Permanent)

	clock.Advance(time.Hour)
	results, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Permanent)
	assert.Equal(t, 2, attempts)
}

func TestEngine_ProcessQueue_SingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			close(started)
			<-release
			return httpClient.ContentID(data), nil
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), apiMock, statusMock, Config{})
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	done := make(chan []models.SyncResult)
	go func() {
		results, _ := eng.ProcessQueue(ctx)
		done <- results
	}()

	<-started
	assert.True(t, eng.IsProcessing())

	// Конкурентный вызов игнорируется, а не блокируется
	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Nil(t, results)

	close(release)
	firstResults := <-done
	require.Len(t, firstResults, 1)
	assert.True(t, firstResults[0].Success)
	assert.False(t, eng.IsProcessing())
}

func TestEngine_ProcessQueue_AbandonsPassWhenConnectionLost(t *testing.T) {
	statusMock, setStatus := newStatusMock(models.StatusOnline)

	var attempts int
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			attempts++
			// Соединение пропадает после первой доставки
			setStatus(models.StatusOffline)
			return httpClient.ContentID(data), nil
		},
	}
	eng, clock := newTestEngine(t, newMemQueue(), apiMock, statusMock, Config{})
	ctx := context.Background()

	for _, noteID := range []string{"note-1", "note-2", "note-3"} {
		_, err := eng.Enqueue(ctx, OperationSpec{
			NoteID:  noteID,
			Type:    models.OperationSave,
			Payload: savePayload(t, noteID, "x"),
		})
		require.NoError(t, err)
		clock.Advance(time.Millisecond)
	}

	results, err := eng.ProcessQueue(ctx)
	require.NoError(t, err)

	// Проход прерван: одна попытка, остальные операции ждут следующего online
	assert.Len(t, results, 1)
	assert.Equal(t, 1, attempts)

	pending, err := eng.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
}

func TestEngine_OnSyncComplete(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			return httpClient.ContentID(data), nil
		},
	}
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), apiMock, statusMock, Config{})
	ctx := context.Background()

	var notified [][]models.SyncResult
	unsubscribe := eng.OnSyncComplete(func(results []models.SyncResult) {
		notified = append(notified, results)
	})

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	_, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, notified, 1)
	assert.True(t, notified[0][0].Success)

	// Пустой проход подписчиков не дергает
	_, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, notified, 1)

	unsubscribe()

	_, err = eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-2",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-2", "y"),
	})
	require.NoError(t, err)

	_, err = eng.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, notified, 1)
}

func TestEngine_ClearQueue(t *testing.T) {
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), &httpClient.ClientAPIMock{}, statusMock, Config{})
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	require.NoError(t, eng.ClearQueue(ctx))

	ops, err := eng.GetQueuedOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestEngine_EnvelopeDeterministic(t *testing.T) {
	statusMock, _ := newStatusMock(models.StatusOnline)
	eng, _ := newTestEngine(t, newMemQueue(), &httpClient.ClientAPIMock{}, statusMock, Config{})

	op := &models.QueuedOperation{
		ID:      "op-1",
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "same text"),
	}

	first, err := eng.encodeEnvelope(op)
	require.NoError(t, err)

	// Тот же payload, другая операция и другое время постановки -
	// байты конверта и контент-идентификатор совпадают
	clone := op.Clone()
	clone.ID = "op-2"
	clone.CreatedAt = op.CreatedAt.Add(time.Hour)

	second, err := eng.encodeEnvelope(clone)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, httpClient.ContentID(first), httpClient.ContentID(second))
}

func TestEngine_InitializeProcessesOnOnlineTransition(t *testing.T) {
	statusMock, setStatus := newStatusMock(models.StatusOffline)

	var mu sync.Mutex
	var uploads int
	apiMock := &httpClient.ClientAPIMock{
		UploadFunc: func(ctx context.Context, data []byte) (string, error) {
			mu.Lock()
			uploads++
			mu.Unlock()
			return httpClient.ContentID(data), nil
		},
	}

	cfg := Config{ProcessInterval: time.Hour} // тикер в тесте не участвует
	eng, _ := newTestEngine(t, newMemQueue(), apiMock, statusMock, cfg)
	ctx := context.Background()

	_, err := eng.Enqueue(ctx, OperationSpec{
		NoteID:  "note-1",
		Type:    models.OperationSave,
		Payload: savePayload(t, "note-1", "x"),
	})
	require.NoError(t, err)

	require.NoError(t, eng.Initialize(ctx))
	defer eng.Destroy()

	// Переход offline -> online будит очередь
	setStatus(models.StatusOnline)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return uploads == 1
	}, 2*time.Second, 10*time.Millisecond)
}
