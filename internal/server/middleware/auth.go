package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/notesync/internal/server/handlers"
	"github.com/iudanet/notesync/pkg/api"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Используется только когда сервер сконфигурирован с секретом;
// анонимный dev-режим обходится без этого middleware.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				rejectUnauthorized(w, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				rejectUnauthorized(w, "invalid token format")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("invalid access token", slog.Any("error", err))
				rejectUnauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.SubjectKey, claims.Subject)

			logger.Debug("request authenticated", slog.String("subject", claims.Subject))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   api.ErrCodeUnauthorized,
		Message: message,
	})
}
