package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/validation"
)

//go:generate moq -out engine_mock.go . Engine

// Engine определяет интерфейс движка синхронизации поверх durable-очереди
type Engine interface {
	// Enqueue валидирует и ставит операцию в очередь, схлопывая её
	// с ещё не отправленной операцией того же типа по той же заметке
	Enqueue(ctx context.Context, spec OperationSpec) (*models.QueuedOperation, error)

	// ProcessQueue выполняет один проход по очереди: по одной попытке
	// доставки на каждую готовую операцию. Конкурентные вызовы игнорируются.
	ProcessQueue(ctx context.Context) ([]models.SyncResult, error)

	// GetQueuedOperations возвращает все операции очереди (pending и failed)
	GetQueuedOperations(ctx context.Context) ([]*models.QueuedOperation, error)

	// PendingCount возвращает количество операций, ожидающих доставки
	PendingCount(ctx context.Context) (int, error)

	// FailedCount возвращает количество операций с исчерпанными повторами
	FailedCount(ctx context.Context) (int, error)

	// IsProcessing сообщает, выполняется ли проход очереди прямо сейчас
	IsProcessing() bool

	// RetryFailed возвращает упавшие операции в состояние pending
	RetryFailed(ctx context.Context) (int, error)

	// ClearQueue удаляет все операции из очереди
	ClearQueue(ctx context.Context) error

	// OnSyncComplete регистрирует подписчика на завершение прохода.
	// Возвращает функцию отписки.
	OnSyncComplete(fn func([]models.SyncResult)) func()

	// Initialize запускает периодические проходы и подписку на connectivity
	Initialize(ctx context.Context) error

	// Destroy останавливает фоновые проходы
	Destroy()
}

// StatusProvider отдает статус соединения и события его смены.
// Реализуется connectivity.Monitor.
type StatusProvider interface {
	Status() models.ConnectionStatus
	OnStatusChange(fn func(models.ConnectivityEvent)) func()
}

// Sealer шифрует конверт операции перед загрузкой в удаленное хранилище.
// Шифрование должно быть детерминированным, иначе ломается
// контент-адресация (см. internal/crypto).
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
}

// OperationSpec описывает операцию, которую нужно поставить в очередь
type OperationSpec struct {
	NoteID     string
	Type       models.OperationType
	Priority   models.Priority
	Payload    []byte
	MaxRetries int // 0 означает значение по умолчанию
}

// Envelope - формат, в котором операция хранится в контент-хранилище.
// Намеренно без временных меток: одинаковая операция должна давать
// одинаковые байты и, соответственно, одинаковый контент-идентификатор.
type Envelope struct {
	Type    models.OperationType `json:"type"`
	NoteID  string               `json:"note_id"`
	Payload json.RawMessage      `json:"payload"`
}

// Config настройки движка синхронизации
type Config struct {
	// BackoffBase базовая задержка повтора, растет как base * 2^retryCount
	BackoffBase time.Duration
	// BackoffMax потолок задержки повтора
	BackoffMax time.Duration
	// ProcessInterval интервал фоновых проходов по очереди
	ProcessInterval time.Duration
	// DefaultMaxRetries потолок повторов для новых операций
	DefaultMaxRetries int
	// UploadedFunc вызывается после успешной доставки операции.
	// Приложение подвешивает сюда запись версии в историю.
	UploadedFunc func(op *models.QueuedOperation, contentID string)
	// Sealer опциональное шифрование конвертов, nil - без шифрования
	Sealer Sealer
}

func (c Config) withDefaults() Config {
	if c.BackoffBase <= 0 {
		c.BackoffBase = 2 * time.Second
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = 5 * time.Minute
	}
	if c.ProcessInterval <= 0 {
		c.ProcessInterval = 30 * time.Second
	}
	if c.DefaultMaxRetries <= 0 {
		c.DefaultMaxRetries = models.DefaultMaxRetries
	}
	return c
}

type engine struct {
	queue     storage.QueueStorage
	apiClient httpClient.ClientAPI
	status    StatusProvider
	logger    *slog.Logger
	cfg       Config
	now       func() time.Time

	mu          sync.Mutex
	processing  bool
	subscribers map[int]func([]models.SyncResult)
	nextSubID   int

	cancel      context.CancelFunc
	kick        chan struct{}
	done        chan struct{}
	unsubscribe func()
}

// NewEngine creates a sync engine over the durable queue
func NewEngine(queue storage.QueueStorage, apiClient httpClient.ClientAPI, status StatusProvider, cfg Config, logger *slog.Logger) Engine {
	return &engine{
		queue:       queue,
		apiClient:   apiClient,
		status:      status,
		logger:      logger,
		cfg:         cfg.withDefaults(),
		now:         func() time.Time { return time.Now().UTC() },
		subscribers: make(map[int]func([]models.SyncResult)),
		kick:        make(chan struct{}, 1),
	}
}

// Enqueue validates and persists an operation, collapsing it with a
// still-pending operation of the same (noteID, type)
func (e *engine) Enqueue(ctx context.Context, spec OperationSpec) (*models.QueuedOperation, error) {
	if err := validation.ValidateNoteID(spec.NoteID); err != nil {
		return nil, err
	}
	if err := validation.ValidateOperationType(spec.Type); err != nil {
		return nil, err
	}
	if err := validation.ValidatePriority(spec.Priority); err != nil {
		return nil, err
	}
	if err := validation.ValidatePayload(spec.Type, spec.Payload); err != nil {
		return nil, err
	}

	priority := spec.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	maxRetries := spec.MaxRetries
	if maxRetries <= 0 {
		maxRetries = e.cfg.DefaultMaxRetries
	}

	now := e.now()

	// Схлопывание: последняя по той же заметке и тому же типу pending-операция
	// получает новый payload, но сохраняет место в очереди (CreatedAt).
	// Разные типы не схлопываются, иначе сломается порядок save -> delete.
	existing, err := e.findCollapsible(ctx, spec.NoteID, spec.Type)
	if err != nil {
		return nil, err
	}

	var op *models.QueuedOperation
	if existing != nil {
		op = existing
		op.Payload = append([]byte(nil), spec.Payload...)
		op.UpdatedAt = now
		// Свежий payload - свежий бюджет повторов
		op.RetryCount = 0
		op.NextRetryAt = time.Time{}
		op.LastError = ""
		op.QuotaFlag = false
		if priority.Rank() > op.Priority.Rank() {
			op.Priority = priority
		}
	} else {
		op = &models.QueuedOperation{
			ID:         uuid.NewString(),
			NoteID:     spec.NoteID,
			Type:       spec.Type,
			Priority:   priority,
			Status:     models.OperationStatusPending,
			Payload:    append([]byte(nil), spec.Payload...),
			MaxRetries: maxRetries,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	if err := e.queue.SaveOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	e.logger.Debug("Operation enqueued",
		"operation_id", op.ID,
		"note_id", op.NoteID,
		"type", op.Type,
		"priority", op.Priority,
		"collapsed", existing != nil)

	return op.Clone(), nil
}

// findCollapsible ищет pending-операцию того же типа по той же заметке
func (e *engine) findCollapsible(ctx context.Context, noteID string, opType models.OperationType) (*models.QueuedOperation, error) {
	ops, err := e.queue.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	for _, op := range ops {
		if op.NoteID == noteID && op.Type == opType && op.Status == models.OperationStatusPending {
			return op, nil
		}
	}
	return nil, nil
}

// ProcessQueue performs a single pass over the queue: one delivery attempt
// per eligible operation. Returns per-operation results, never an error per op.
func (e *engine) ProcessQueue(ctx context.Context) ([]models.SyncResult, error) {
	e.mu.Lock()
	if e.processing {
		e.mu.Unlock()
		e.logger.Debug("Queue pass already in progress, ignoring")
		return nil, nil
	}
	e.processing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.processing = false
		e.mu.Unlock()
	}()

	// Проход имеет смысл только при подтвержденном соединении
	if e.status.Status() != models.StatusOnline {
		e.logger.Debug("Skipping queue pass, not online", "status", e.status.Status())
		return nil, nil
	}

	ops, err := e.queue.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	eligible := e.orderForProcessing(ops)
	if len(eligible) == 0 {
		return nil, nil
	}

	e.logger.Info("Starting queue pass", "eligible", len(eligible))

	results := make([]models.SyncResult, 0, len(eligible))
	for _, op := range eligible {
		if ctx.Err() != nil {
			break
		}
		// Уход в offline посреди прохода - проход прекращается,
		// остаток очереди подождет следующего online
		if e.status.Status() != models.StatusOnline {
			e.logger.Info("Connection lost, abandoning queue pass")
			break
		}

		results = append(results, e.processOne(ctx, op))
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	e.logger.Info("Queue pass finished",
		"attempted", len(results),
		"succeeded", succeeded)

	e.notifySyncComplete(results)

	return results, nil
}

// orderForProcessing отбирает готовые операции и упорядочивает их:
// приоритет по убыванию, внутри приоритета FIFO по CreatedAt.
// Затем порядок стабилизируется per-note: операции одной заметки
// всегда идут строго в порядке постановки, независимо от приоритета,
// чтобы delete не уехал раньше более раннего save.
func (e *engine) orderForProcessing(ops []*models.QueuedOperation) []*models.QueuedOperation {
	now := e.now()

	eligible := make([]*models.QueuedOperation, 0, len(ops))
	for _, op := range ops {
		if op.Eligible(now) {
			eligible = append(eligible, op)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Priority.Rank() != eligible[j].Priority.Rank() {
			return eligible[i].Priority.Rank() > eligible[j].Priority.Rank()
		}
		if !eligible[i].CreatedAt.Equal(eligible[j].CreatedAt) {
			return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
		}
		return eligible[i].ID < eligible[j].ID
	})

	// Per-note FIFO: для каждой заметки выстраиваем её операции по CreatedAt
	// и раздаем их в порядке следования слотов этой заметки в общем списке
	byNote := make(map[string][]*models.QueuedOperation)
	for _, op := range eligible {
		byNote[op.NoteID] = append(byNote[op.NoteID], op)
	}
	for _, noteOps := range byNote {
		sort.Slice(noteOps, func(i, j int) bool {
			if !noteOps[i].CreatedAt.Equal(noteOps[j].CreatedAt) {
				return noteOps[i].CreatedAt.Before(noteOps[j].CreatedAt)
			}
			return noteOps[i].ID < noteOps[j].ID
		})
	}

	taken := make(map[string]int, len(byNote))
	ordered := make([]*models.QueuedOperation, 0, len(eligible))
	for _, op := range eligible {
		noteOps := byNote[op.NoteID]
		ordered = append(ordered, noteOps[taken[op.NoteID]])
		taken[op.NoteID]++
	}

	return ordered
}

// processOne выполняет одну попытку доставки операции
func (e *engine) processOne(ctx context.Context, op *models.QueuedOperation) models.SyncResult {
	result := models.SyncResult{
		OperationID: op.ID,
		NoteID:      op.NoteID,
		Type:        op.Type,
	}

	envelope, err := e.encodeEnvelope(op)
	if err != nil {
		// Конверт не собирается - payload безнадежен, повторы бессмысленны
		e.failPermanently(ctx, op, err)
		result.Error = err.Error()
		result.Permanent = true
		return result
	}

	contentID, err := e.apiClient.Upload(ctx, envelope)
	if err == nil {
		if delErr := e.queue.DeleteOperation(ctx, op.ID); delErr != nil {
			e.logger.Warn("Failed to remove delivered operation",
				"operation_id", op.ID,
				"error", delErr)
		}
		e.logger.Debug("Operation delivered",
			"operation_id", op.ID,
			"note_id", op.NoteID,
			"type", op.Type,
			"content_id", contentID)

		result.Success = true
		result.ContentID = contentID

		if e.cfg.UploadedFunc != nil {
			e.cfg.UploadedFunc(op.Clone(), contentID)
		}
		return result
	}

	result.Error = err.Error()

	switch {
	case httpClient.IsValidation(err):
		// Сервер отверг данные - повторы не помогут
		e.failPermanently(ctx, op, err)
		result.Permanent = true

	case httpClient.IsQuota(err):
		// Квота: операция остается в очереди с флагом, без расхода повторов
		op.QuotaFlag = true
		op.LastError = err.Error()
		op.UpdatedAt = e.now()
		e.saveMutated(ctx, op)
		e.logger.Warn("Quota exceeded, operation kept in queue",
			"operation_id", op.ID,
			"error", err)

	default:
		// Транзиентные ошибки и конфликты идут через backoff.
		// Конфликту дается один дополнительный повтор.
		budget := op.MaxRetries
		if httpClient.IsConflict(err) {
			budget++
		}
		e.scheduleRetry(ctx, op, err, budget)
		result.Permanent = op.Status == models.OperationStatusFailed
	}

	return result
}

// scheduleRetry увеличивает счетчик повторов и либо назначает backoff,
// либо помечает операцию как permanently failed
func (e *engine) scheduleRetry(ctx context.Context, op *models.QueuedOperation, cause error, budget int) {
	op.RetryCount++
	op.LastError = cause.Error()
	op.UpdatedAt = e.now()

	if op.RetryCount >= budget {
		op.Status = models.OperationStatusFailed
		e.logger.Warn("Operation failed permanently, retries exhausted",
			"operation_id", op.ID,
			"note_id", op.NoteID,
			"retries", op.RetryCount,
			"error", cause)
	} else {
		op.NextRetryAt = op.UpdatedAt.Add(e.backoff(op.RetryCount))
		e.logger.Debug("Operation scheduled for retry",
			"operation_id", op.ID,
			"retry_count", op.RetryCount,
			"next_retry_at", op.NextRetryAt)
	}

	e.saveMutated(ctx, op)
}

// failPermanently marks the operation as failed without further retries
func (e *engine) failPermanently(ctx context.Context, op *models.QueuedOperation, cause error) {
	op.Status = models.OperationStatusFailed
	op.LastError = cause.Error()
	op.UpdatedAt = e.now()
	e.saveMutated(ctx, op)

	e.logger.Warn("Operation failed permanently",
		"operation_id", op.ID,
		"note_id", op.NoteID,
		"error", cause)
}

func (e *engine) saveMutated(ctx context.Context, op *models.QueuedOperation) {
	if err := e.queue.SaveOperation(ctx, op); err != nil {
		e.logger.Error("Failed to persist operation state",
			"operation_id", op.ID,
			"error", err)
	}
}

// backoff вычисляет задержку повтора: base * 2^retryCount с потолком
func (e *engine) backoff(retryCount int) time.Duration {
	d := e.cfg.BackoffBase
	for i := 0; i < retryCount; i++ {
		d *= 2
		if d >= e.cfg.BackoffMax {
			return e.cfg.BackoffMax
		}
	}
	if d > e.cfg.BackoffMax {
		return e.cfg.BackoffMax
	}
	return d
}

// encodeEnvelope собирает байты, которые уедут в контент-хранилище
func (e *engine) encodeEnvelope(op *models.QueuedOperation) ([]byte, error) {
	envelope := Envelope{
		Type:    op.Type,
		NoteID:  op.NoteID,
		Payload: json.RawMessage(op.Payload),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	if e.cfg.Sealer != nil {
		sealed, err := e.cfg.Sealer.Seal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to seal envelope: %w", err)
		}
		data = sealed
	}

	return data, nil
}

// GetQueuedOperations возвращает все операции очереди
func (e *engine) GetQueuedOperations(ctx context.Context) ([]*models.QueuedOperation, error) {
	ops, err := e.queue.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].CreatedAt.Before(ops[j].CreatedAt)
	})

	return ops, nil
}

// PendingCount возвращает количество pending-операций
func (e *engine) PendingCount(ctx context.Context) (int, error) {
	return e.countByStatus(ctx, models.OperationStatusPending)
}

// FailedCount возвращает количество операций с исчерпанными повторами
func (e *engine) FailedCount(ctx context.Context) (int, error) {
	return e.countByStatus(ctx, models.OperationStatusFailed)
}

func (e *engine) countByStatus(ctx context.Context, status models.OperationStatus) (int, error) {
	ops, err := e.queue.ListOperations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list operations: %w", err)
	}

	count := 0
	for _, op := range ops {
		if op.Status == status {
			count++
		}
	}
	return count, nil
}

// IsProcessing сообщает, идет ли проход очереди
func (e *engine) IsProcessing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.processing
}

// RetryFailed resets failed operations back to pending with a fresh
// retry budget. Returns the number of requeued operations.
func (e *engine) RetryFailed(ctx context.Context) (int, error) {
	ops, err := e.queue.ListOperations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list operations: %w", err)
	}

	requeued := 0
	for _, op := range ops {
		if op.Status != models.OperationStatusFailed && !op.QuotaFlag {
			continue
		}

		op.Status = models.OperationStatusPending
		op.RetryCount = 0
		op.NextRetryAt = time.Time{}
		op.LastError = ""
		op.QuotaFlag = false
		op.UpdatedAt = e.now()

		if err := e.queue.SaveOperation(ctx, op); err != nil {
			return requeued, fmt.Errorf("failed to requeue operation %s: %w", op.ID, err)
		}
		requeued++
	}

	e.logger.Info("Failed operations requeued", "count", requeued)

	return requeued, nil
}

// ClearQueue removes every operation from the queue
func (e *engine) ClearQueue(ctx context.Context) error {
	if err := e.queue.ClearOperations(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	e.logger.Info("Operation queue cleared")
	return nil
}

// OnSyncComplete регистрирует подписчика на завершение прохода
func (e *engine) OnSyncComplete(fn func([]models.SyncResult)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subscribers, id)
	}
}

func (e *engine) notifySyncComplete(results []models.SyncResult) {
	if len(results) == 0 {
		return
	}

	e.mu.Lock()
	subs := make([]func([]models.SyncResult), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		subs = append(subs, fn)
	}
	e.mu.Unlock()

	for _, fn := range subs {
		fn(results)
	}
}

// Initialize запускает периодические проходы очереди и проход
// по переходу offline -> online
func (e *engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	if e.cancel != nil {
		e.mu.Unlock()
		return nil // уже запущен
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.done = make(chan struct{})
	e.mu.Unlock()

	unsubscribe := e.status.OnStatusChange(func(event models.ConnectivityEvent) {
		if event.Status != models.StatusOnline {
			return
		}
		// Появился online - будим очередь немедленно
		select {
		case e.kick <- struct{}{}:
		default:
		}
	})

	e.mu.Lock()
	e.unsubscribe = unsubscribe
	e.mu.Unlock()

	go e.run(runCtx)

	return nil
}

// Destroy stops background passes; safe to call more than once
func (e *engine) Destroy() {
	e.mu.Lock()
	cancel := e.cancel
	done := e.done
	unsubscribe := e.unsubscribe
	e.cancel = nil
	e.unsubscribe = nil
	e.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
		<-done
	}
}

func (e *engine) run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.cfg.ProcessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-e.kick:
		}

		if _, err := e.ProcessQueue(ctx); err != nil {
			e.logger.Error("Queue pass failed", "error", err)
		}
	}
}
