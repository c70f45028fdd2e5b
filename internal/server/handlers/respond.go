package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/notesync/pkg/api"
)

// writeJSON сериализует ответ в JSON с указанным статусом
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError отправляет структурированную ошибку из pkg/api
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
