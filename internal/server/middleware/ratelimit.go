package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/notesync/pkg/api"
)

// RateLimiter ограничивает частоту запросов по ключу (IP клиента).
// Токен-бакет с постепенным пополнением: клиент получает rate токенов
// на окно window, токены возвращаются пропорционально прошедшему времени.
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	cleanupC chan struct{}
	rate     int
	window   time.Duration
	mu       sync.RWMutex
}

type bucket struct {
	lastRefill time.Time
	tokens     float64
	mu         sync.Mutex
}

func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// cleanupLoop удаляет бакеты клиентов, молчавших дольше двух окон.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropStale()
		case <-rl.cleanupC:
			return
		}
	}
}

func (rl *RateLimiter) dropStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		stale := now.Sub(b.lastRefill) > rl.window*2
		b.mu.Unlock()
		if stale {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает фоновую очистку.
func (rl *RateLimiter) Stop() {
	close(rl.cleanupC)
}

// Allow списывает один токен для ключа. false означает что лимит исчерпан.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.RLock()
	b, exists := rl.buckets[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		b, exists = rl.buckets[key]
		if !exists {
			b = &bucket{
				tokens:     float64(rl.rate),
				lastRefill: time.Now(),
			}
			rl.buckets[key] = b
		}
		rl.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill)

	// Пропорциональное пополнение вместо сброса целым окном,
	// долгие загрузки блобов не обнуляют лимит соседним запросам.
	refill := float64(rl.rate) * (float64(elapsed) / float64(rl.window))
	if refill > 0 {
		b.tokens += refill
		if b.tokens > float64(rl.rate) {
			b.tokens = float64(rl.rate)
		}
		b.lastRefill = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}

	return false
}

// RateLimitMiddleware ограничивает все запросы одним лимитом на IP.
func RateLimitMiddleware(rate int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, window, logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r)

			if !limiter.Allow(key) {
				rejectRateLimited(w, r, key, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PathRateLimit задает отдельный лимит для префикса пути.
// Префикс, а не точное совпадение: у скачивания блобов
// contentID является частью пути.
type PathRateLimit struct {
	Prefix string
	Rate   int
	Window time.Duration
}

// RateLimitByPathMiddleware применяет первый подходящий по префиксу лимит,
// для остальных путей действует дефолтный.
func RateLimitByPathMiddleware(limits []PathRateLimit, defaultRate int, defaultWindow time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	type prefixLimiter struct {
		limiter *RateLimiter
		prefix  string
	}

	limiters := make([]prefixLimiter, 0, len(limits))
	for _, limit := range limits {
		limiters = append(limiters, prefixLimiter{
			prefix:  limit.Prefix,
			limiter: NewRateLimiter(limit.Rate, limit.Window, logger),
		})
	}

	defaultLimiter := NewRateLimiter(defaultRate, defaultWindow, logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := defaultLimiter
			for _, pl := range limiters {
				if strings.HasPrefix(r.URL.Path, pl.prefix) {
					limiter = pl.limiter
					break
				}
			}

			key := getClientIP(r)
			if !limiter.Allow(key) {
				rejectRateLimited(w, r, key, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, r *http.Request, key string, logger *slog.Logger) {
	logger.Warn("rate limit exceeded",
		slog.String("ip", key),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   api.ErrCodeRateLimited,
		Message: "rate limit exceeded, please try again later",
	})
}

// getClientIP извлекает адрес клиента. За прокси берется первый адрес
// из X-Forwarded-For, затем X-Real-IP, иначе RemoteAddr без порта.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
