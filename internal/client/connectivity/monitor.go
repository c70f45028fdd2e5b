package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out monitor_mock.go . Monitor

// Monitor определяет интерфейс наблюдателя за доступностью сервера
type Monitor interface {
	// Initialize запускает периодический health-probe в фоне
	Initialize(ctx context.Context) error

	// Destroy останавливает фоновый probe и отписывает всех подписчиков
	Destroy()

	// Status возвращает текущий статус соединения
	Status() models.ConnectionStatus

	// IsOnline сообщает, подтверждено ли соединение с сервером
	IsOnline() bool

	// CheckNow выполняет немедленный probe и возвращает обновлённый статус
	CheckNow(ctx context.Context) models.ConnectionStatus

	// SignalNetworkChange принимает внешний хинт платформы о смене сети.
	// Хинт сам по себе статус не меняет: online-хинт переводит монитор
	// в connecting и инициирует подтверждающий probe, offline-хинт
	// инициирует probe немедленно.
	SignalNetworkChange(online bool)

	// OnStatusChange регистрирует подписчика на смену статуса.
	// Возвращает функцию отписки.
	OnStatusChange(fn func(models.ConnectivityEvent)) func()
}

// Config настройки монитора
type Config struct {
	// ProbeInterval интервал между периодическими health-запросами
	ProbeInterval time.Duration
	// ProbeTimeout таймаут одного health-запроса
	ProbeTimeout time.Duration
	// ConfirmCount сколько одинаковых probe подряд нужно для смены статуса
	ConfirmCount int
}

// DefaultConfig returns monitor settings used by the client by default
func DefaultConfig() Config {
	return Config{
		ProbeInterval: 30 * time.Second,
		ProbeTimeout:  5 * time.Second,
		ConfirmCount:  2,
	}
}

func (c Config) withDefaults() Config {
	if c.ProbeInterval <= 0 {
		c.ProbeInterval = 30 * time.Second
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 5 * time.Second
	}
	if c.ConfirmCount <= 0 {
		c.ConfirmCount = 2
	}
	return c
}

type monitor struct {
	apiClient httpClient.ClientAPI
	logger    *slog.Logger
	cfg       Config

	mu          sync.Mutex
	status      models.ConnectionStatus
	streak      models.ConnectionStatus // кандидат на смену статуса
	streakCount int
	subscribers map[int]func(models.ConnectivityEvent)
	nextSubID   int

	cancel context.CancelFunc
	kick   chan struct{}
	done   chan struct{}
}

// NewMonitor creates a connectivity monitor over the given API client
func NewMonitor(apiClient httpClient.ClientAPI, cfg Config, logger *slog.Logger) Monitor {
	return &monitor{
		apiClient:   apiClient,
		logger:      logger,
		cfg:         cfg.withDefaults(),
		status:      models.StatusUnknown,
		subscribers: make(map[int]func(models.ConnectivityEvent)),
		kick:        make(chan struct{}, 1),
	}
}

// Initialize запускает фоновый цикл probe'ов.
// Первый probe выполняется сразу, чтобы выйти из состояния unknown.
func (m *monitor) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.cancel != nil {
		m.mu.Unlock()
		return nil // уже запущен
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.done = make(chan struct{})
	m.mu.Unlock()

	go m.run(runCtx)

	return nil
}

// Destroy stops the probe loop; safe to call more than once
func (m *monitor) Destroy() {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.subscribers = make(map[int]func(models.ConnectivityEvent))
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (m *monitor) run(ctx context.Context) {
	defer close(m.done)

	// Первый probe без ожидания тикера
	m.probe(ctx, true)

	ticker := time.NewTicker(m.cfg.ProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx, false)
		case <-m.kick:
			// Хинт платформы считается подтверждением,
			// результат probe применяется без debounce
			m.probe(ctx, true)
		}
	}
}

// Status возвращает текущий статус соединения
func (m *monitor) Status() models.ConnectionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// IsOnline сообщает, подтверждено ли соединение
func (m *monitor) IsOnline() bool {
	return m.Status() == models.StatusOnline
}

// CheckNow выполняет probe синхронно и возвращает обновлённый статус.
// Результат применяется немедленно, минуя debounce.
func (m *monitor) CheckNow(ctx context.Context) models.ConnectionStatus {
	m.probe(ctx, true)
	return m.Status()
}

// SignalNetworkChange принимает хинт платформы о смене сети
func (m *monitor) SignalNetworkChange(online bool) {
	if online {
		m.mu.Lock()
		if m.status == models.StatusOffline || m.status == models.StatusUnknown {
			m.transitionLocked(models.StatusConnecting)
		}
		m.mu.Unlock()
	}

	// Link-layer события ненадёжны, поэтому в обе стороны
	// статус подтверждается probe'ом
	select {
	case m.kick <- struct{}{}:
	default:
	}
}

// OnStatusChange регистрирует подписчика, возвращает функцию отписки
func (m *monitor) OnStatusChange(fn func(models.ConnectivityEvent)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// probe выполняет один health-запрос и обновляет статус.
// immediate=true применяет результат сразу, иначе через debounce
// из ConfirmCount одинаковых результатов подряд.
func (m *monitor) probe(ctx context.Context, immediate bool) {
	probeCtx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
	defer cancel()

	observed := models.StatusOnline
	if err := m.apiClient.Health(probeCtx); err != nil {
		if ctx.Err() != nil {
			return // монитор останавливается, результат не интерпретируем
		}
		m.logger.Debug("Health probe failed", "error", err)
		observed = models.StatusOffline
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.status
	if current == observed {
		m.streakCount = 0
		return
	}

	// Из unknown/connecting выходим по первому же результату
	if immediate || current == models.StatusUnknown || current == models.StatusConnecting {
		m.streakCount = 0
		m.transitionLocked(observed)
		return
	}

	if m.streak != observed {
		m.streak = observed
		m.streakCount = 0
	}
	m.streakCount++

	if m.streakCount >= m.cfg.ConfirmCount {
		m.streakCount = 0
		m.transitionLocked(observed)
	}
}

// transitionLocked меняет статус и уведомляет подписчиков.
// Вызывается только под m.mu.
func (m *monitor) transitionLocked(next models.ConnectionStatus) {
	if m.status == next {
		return
	}

	event := models.ConnectivityEvent{
		Timestamp: time.Now().UTC(),
		Status:    next,
		Previous:  m.status,
	}
	m.status = next

	m.logger.Info("Connection status changed",
		"from", event.Previous,
		"to", event.Status)

	// Копируем подписчиков и уведомляем вне блокировки
	subs := make([]func(models.ConnectivityEvent), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}

	go func() {
		for _, fn := range subs {
			fn(event)
		}
	}()
}
