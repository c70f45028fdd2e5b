package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// statusRecorder captures status code and response size for the access log.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.written += int64(n)
	return n, err
}

// LoggingMiddleware логирует каждый запрос к хранилищу блобов: метод,
// путь, статус, длительность и размер ответа. Тело запроса и токены
// в лог не попадают.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.statusCode >= 500:
				level = slog.LevelError
			case rec.statusCode >= 400:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", sanitizePath(r.URL.Path)),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", rec.statusCode),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int64("bytes_written", rec.written),
			)
		})
	}
}

// sanitizePath укорачивает контент-идентификаторы в пути.
// Полный hex SHA-256 в каждом GET /api/v1/blobs/<id> раздувает логи,
// для корреляции хватает короткого префикса.
func sanitizePath(path string) string {
	if !strings.Contains(path, "/blobs/") {
		return path
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "blobs" && i+1 < len(parts) && len(parts[i+1]) > 12 {
			parts[i+1] = parts[i+1][:12] + "..."
		}
	}
	return strings.Join(parts, "/")
}

// LoggingWithSkip не логирует перечисленные пути. Health check
// опрашивается connectivity-монитором каждые несколько секунд
// и забил бы лог без этого фильтра.
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = true
	}

	logging := LoggingMiddleware(logger)

	return func(next http.Handler) http.Handler {
		logged := logging(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			logged.ServeHTTP(w, r)
		})
	}
}
