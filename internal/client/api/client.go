package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/notesync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет контракт удаленного контент-адресуемого хранилища.
// Upload идемпотентен: одинаковые байты всегда дают один и тот же
// идентификатор, поэтому повторная загрузка после ретрая - это no-op
// с точки зрения хранилища.
type ClientAPI interface {
	// Upload загружает байты и возвращает контент-идентификатор
	Upload(ctx context.Context, data []byte) (string, error)

	// Fetch скачивает байты по контент-идентификатору
	Fetch(ctx context.Context, contentID string) ([]byte, error)

	// Health проверяет достижимость хранилища (reachability probe)
	Health(ctx context.Context) error
}

// Client представляет HTTP клиент удаленного контент-адресуемого хранилища
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// NewClient создает новый API клиент.
// authToken опционален - пустая строка означает анонимный доступ.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// ContentID вычисляет контент-идентификатор для байтов (hex SHA-256).
// Совпадает с идентификатором, который возвращает сервер.
func ContentID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Upload загружает байты в хранилище и возвращает контент-идентификатор.
// Клиент проверяет, что идентификатор от сервера совпадает с локально
// вычисленным - расхождение означает порчу данных по дороге.
func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Err: fmt.Errorf("cannot upload empty content")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/blobs", bytes.NewReader(data))
	if err != nil {
		return "", &ValidationError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортная ошибка - сеть недоступна или таймаут
		return "", &TransientError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransientError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return "", err
	}

	var uploadResp api.UploadResponse
	if err := json.Unmarshal(respBody, &uploadResp); err != nil {
		return "", &TransientError{Err: fmt.Errorf("failed to decode upload response: %w", err)}
	}

	// Проверяем контент-адресацию: сервер обязан вернуть SHA-256 наших байт
	if expected := ContentID(data); uploadResp.ContentID != expected {
		return "", &TransientError{Err: fmt.Errorf("content id mismatch: expected %s, got %s", expected, uploadResp.ContentID)}
	}

	return uploadResp.ContentID, nil
}

// Fetch скачивает байты по контент-идентификатору и проверяет их целостность.
func (c *Client) Fetch(ctx context.Context, contentID string) ([]byte, error) {
	if contentID == "" {
		return nil, &ValidationError{Err: fmt.Errorf("content id cannot be empty")}
	}

	url := fmt.Sprintf("%s/api/v1/blobs/%s", c.baseURL, contentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return nil, err
	}

	// Проверяем целостность: hash скачанных байт обязан совпасть с адресом
	if got := ContentID(respBody); got != contentID {
		return nil, &TransientError{Err: fmt.Errorf("content hash mismatch: expected %s, got %s", contentID, got)}
	}

	return respBody, nil
}

// Health выполняет легковесный reachability probe.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &TransientError{Err: fmt.Errorf("health check returned status %d", resp.StatusCode)}
	}

	return nil
}

// setAuth добавляет Authorization заголовок если задан токен.
func (c *Client) setAuth(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}

// classifyStatus транслирует HTTP статус в таксономию ошибок доставки.
func classifyStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := serverMessage(status, body)

	switch {
	case status == http.StatusConflict:
		return &ConflictError{Err: msg}
	case status == http.StatusRequestEntityTooLarge || status == http.StatusInsufficientStorage:
		return &QuotaError{Err: msg}
	case status == http.StatusTooManyRequests || status == http.StatusRequestTimeout || status >= 500:
		return &TransientError{Err: msg}
	default:
		// 4xx: запрос невалиден, повторять бессмысленно
		return &ValidationError{Err: msg}
	}
}

// serverMessage извлекает сообщение об ошибке из тела ответа.
func serverMessage(status int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("server error (%d): %s", status, errResp.Message)
	}
	return fmt.Errorf("request failed with status %d: %s", status, string(body))
}
