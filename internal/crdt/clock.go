package crdt

import (
	"sync"

	"github.com/google/uuid"
)

// LamportClock представляет логические часы Лампорта для упорядочивания
// правок в распределенной системе без синхронизации физического времени.
// Каждая реплика редактора владеет одним экземпляром часов.
type LamportClock struct {
	counter int64      // монотонно возрастающий счетчик
	nodeID  string     // уникальный идентификатор реплики
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// NewLamportClock создает новый экземпляр часов Лампорта
// со случайным идентификатором реплики (UUID).
func NewLamportClock() *LamportClock {
	return &LamportClock{
		counter: 0,
		nodeID:  uuid.New().String(),
	}
}

// NewLamportClockWithNodeID создает часы с заданным идентификатором реплики.
// Используется при восстановлении состояния после перезапуска и в тестах.
func NewLamportClockWithNodeID(nodeID string) *LamportClock {
	return &LamportClock{
		counter: 0,
		nodeID:  nodeID,
	}
}

// Tick увеличивает счетчик и возвращает новый timestamp.
// Вызывается при каждой локальной правке.
func (lc *LamportClock) Tick() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.counter++
	return lc.counter
}

// Observe обновляет счетчик на основе timestamp, полученного от другой
// реплики: counter = max(counter, remote) + 1. Вызывается при применении
// удаленной дельты, чтобы последующие локальные правки были "позже" нее.
func (lc *LamportClock) Observe(remoteTimestamp int64) int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if remoteTimestamp > lc.counter {
		lc.counter = remoteTimestamp
	}
	lc.counter++

	return lc.counter
}

// Timestamp возвращает текущее значение счетчика без его изменения.
func (lc *LamportClock) Timestamp() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.counter
}

// NodeID возвращает идентификатор реплики.
func (lc *LamportClock) NodeID() string {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.nodeID
}

// Restore устанавливает счетчик в заданное значение.
// Используется при восстановлении реплики из локального хранилища.
func (lc *LamportClock) Restore(timestamp int64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.counter = timestamp
}
