package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/notesync/pkg/api"
)

// HealthHandler обрабатывает health check запросы.
// Клиентский connectivity-монитор использует этот endpoint как
// reachability probe, поэтому ответ должен быть дешевым.
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
