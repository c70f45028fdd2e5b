package models

import "time"

// OperationType определяет тип отложенной операции синхронизации.
type OperationType string

// Типы операций синхронизации
const (
	OperationSave    OperationType = "save"    // сохранение снапшота заметки
	OperationDelete  OperationType = "delete"  // удаление заметки (tombstone)
	OperationShare   OperationType = "share"   // выдача доступа к заметке
	OperationVersion OperationType = "version" // CRDT-дельта для истории версий
)

// Priority определяет приоритет обработки операции в очереди.
// Операции обрабатываются в порядке critical > high > normal > low,
// внутри одного приоритета - FIFO по времени создания.
type Priority string

// Приоритеты операций
const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank возвращает числовой ранг приоритета для сортировки.
// Больший ранг означает более раннюю обработку.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	case PriorityLow:
		return 0
	default:
		return 1 // неизвестный приоритет трактуем как normal
	}
}

// OperationStatus определяет состояние операции в очереди.
type OperationStatus string

// Состояния операций в очереди
const (
	OperationStatusPending OperationStatus = "pending" // ожидает обработки (включая повторы)
	OperationStatusFailed  OperationStatus = "failed"  // исчерпаны повторы, требует внимания
)

// DefaultMaxRetries количество попыток по умолчанию, после которых
// операция помечается как permanently failed.
const DefaultMaxRetries = 3

// QueuedOperation представляет отложенную мутацию в durable-очереди синхронизации.
// Создается при любой локальной мутации (в том числе offline), удаляется из
// очереди при успешной доставке в удаленное хранилище. При неудаче мутируются
// только RetryCount, NextRetryAt, LastError и Status.
type QueuedOperation struct {
	CreatedAt   time.Time       `json:"created_at"`    // CreatedAt время постановки в очередь (FIFO внутри приоритета)
	UpdatedAt   time.Time       `json:"updated_at"`    // UpdatedAt время последней мутации записи
	NextRetryAt time.Time       `json:"next_retry_at"` // NextRetryAt момент, раньше которого операция не обрабатывается (backoff)
	ID          string          `json:"id"`            // ID уникальный идентификатор операции (UUID)
	NoteID      string          `json:"note_id"`       // NoteID идентификатор целевой заметки
	Type        OperationType   `json:"type"`          // Type тип операции (save/delete/share/version)
	Priority    Priority        `json:"priority"`      // Priority приоритет обработки
	Status      OperationStatus `json:"status"`        // Status pending или failed
	LastError   string          `json:"last_error"`    // LastError причина последней неудачи, если была
	Payload     []byte          `json:"payload"`       // Payload данные операции (снапшот, grant, CRDT-дельта)
	RetryCount  int             `json:"retry_count"`   // RetryCount количество неудачных попыток
	MaxRetries  int             `json:"max_retries"`   // MaxRetries потолок повторов
	QuotaFlag   bool            `json:"quota_flag"`    // QuotaFlag локальное хранилище переполнено, нужна реакция пользователя
}

// Eligible сообщает, готова ли операция к обработке в момент now:
// операция pending и ее backoff-окно истекло.
func (op *QueuedOperation) Eligible(now time.Time) bool {
	return op.Status == OperationStatusPending && !op.NextRetryAt.After(now)
}

// Clone создает глубокую копию операции.
func (op *QueuedOperation) Clone() *QueuedOperation {
	clone := *op
	clone.Payload = make([]byte, len(op.Payload))
	copy(clone.Payload, op.Payload)
	return &clone
}

// SyncResult представляет результат одной попытки доставки операции
// в рамках прохода ProcessQueue. Ошибки не выбрасываются наружу -
// каждая попытка фиксируется в своем результате.
type SyncResult struct {
	OperationID string        `json:"operation_id"` // OperationID идентификатор операции
	NoteID      string        `json:"note_id"`      // NoteID целевая заметка
	Type        OperationType `json:"type"`         // Type тип операции
	ContentID   string        `json:"content_id"`   // ContentID идентификатор контента при успешной загрузке
	Error       string        `json:"error"`        // Error текст ошибки при неудаче
	Success     bool          `json:"success"`      // Success доставлена ли операция
	Permanent   bool          `json:"permanent"`    // Permanent исчерпаны повторы либо payload невалиден
}
