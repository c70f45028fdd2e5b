package api

import (
	"errors"
	"fmt"
)

// Таксономия ошибок доставки (см. обработку очереди в syncer):
//   - TransientError: сетевая/временная ошибка, ретраится с backoff
//   - ValidationError: payload или запрос невалиден, не ретраится никогда
//   - QuotaError: хранилище переполнено, операция остается в очереди с флагом
//   - ConflictError: удаленное хранилище отвергло запись; при CRDT-мерже
//     не должна возникать, трактуется как transient с одним доп. повтором

// TransientError временная ошибка доставки (сеть, 5xx, таймаут).
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ValidationError постоянная ошибка: запрос или payload невалиден.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// QuotaError хранилище (локальное или удаленное) переполнено.
type QuotaError struct {
	Err error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exceeded: %v", e.Err)
}

func (e *QuotaError) Unwrap() error { return e.Err }

// ConflictError удаленное хранилище отвергло запись из-за конфликта.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %v", e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// IsTransient возвращает true если ошибку имеет смысл ретраить с backoff.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsValidation возвращает true если ошибка постоянная (не ретраится).
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsQuota возвращает true если ошибка вызвана переполнением хранилища.
func IsQuota(err error) bool {
	var qe *QuotaError
	return errors.As(err, &qe)
}

// IsConflict возвращает true если запись отвергнута из-за конфликта.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
