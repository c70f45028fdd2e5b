package api

// UploadResponse представляет ответ сервера на загрузку блоба.
// Хранилище контент-адресуемое: идентификатор детерминированно выводится
// из байтов контента, поэтому повторная загрузка тех же байтов возвращает
// тот же идентификатор.
type UploadResponse struct {
	ContentID string `json:"content_id"` // ContentID hex SHA-256 контента
	SizeBytes int64  `json:"size_bytes"` // SizeBytes размер принятого контента
	Existed   bool   `json:"existed"`    // Existed контент уже был в хранилище (дедупликация)
}

// ErrorResponse представляет ошибку сервера.
type ErrorResponse struct {
	Error   string `json:"error"`   // Error машиночитаемый код ошибки
	Message string `json:"message"` // Message человекочитаемое описание
}

// HealthResponse представляет ответ health check.
// Используется connectivity-монитором клиента как reachability probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Коды ошибок в ErrorResponse.Error
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeQuotaExceeded  = "quota_exceeded"
	ErrCodeRateLimited    = "rate_limited"
	ErrCodeInternal       = "internal_error"
)
