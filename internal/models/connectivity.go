package models

import "time"

// ConnectionStatus определяет состояние связности с удаленным хранилищем.
// Начальное состояние unknown сохраняется до первого результата probe.
type ConnectionStatus string

// Состояния связности
const (
	StatusUnknown    ConnectionStatus = "unknown"
	StatusOnline     ConnectionStatus = "online"
	StatusOffline    ConnectionStatus = "offline"
	StatusConnecting ConnectionStatus = "connecting"
)

// ConnectivityEvent представляет событие смены статуса связности.
// Потребляется sync-движком для гейтинга обработки очереди и UI-слоем
// для отображения индикатора.
type ConnectivityEvent struct {
	Timestamp time.Time        `json:"timestamp"` // Timestamp момент перехода
	Status    ConnectionStatus `json:"status"`    // Status новый статус
	Previous  ConnectionStatus `json:"previous"`  // Previous предыдущий статус
}
