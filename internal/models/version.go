package models

import "time"

// ChangeType определяет причину появления версии в истории заметки.
type ChangeType string

// Типы изменений
const (
	ChangeTypeCreated  ChangeType = "created"  // первая версия заметки
	ChangeTypeEdited   ChangeType = "edited"   // обычное редактирование
	ChangeTypeRestored ChangeType = "restored" // откат к старой версии (создает новую версию)
)

// DiffStats содержит статистику различий между двумя версиями.
// Считается и по строкам, и по символам; направление выбирает вызывающий
// (base -> compare), отчет симметричен по составу полей.
type DiffStats struct {
	LinesAdded   int `json:"lines_added"`   // LinesAdded добавлено строк
	LinesRemoved int `json:"lines_removed"` // LinesRemoved удалено строк
	LinesChanged int `json:"lines_changed"` // LinesChanged изменено строк
	CharsAdded   int `json:"chars_added"`   // CharsAdded добавлено символов
	CharsRemoved int `json:"chars_removed"` // CharsRemoved удалено символов
}

// IsZero возвращает true если различий нет.
func (d DiffStats) IsZero() bool {
	return d.LinesAdded == 0 && d.LinesRemoved == 0 && d.LinesChanged == 0 &&
		d.CharsAdded == 0 && d.CharsRemoved == 0
}

// Version представляет неизменяемую запись в append-only истории заметки.
// Версии упорядочены по CreatedAt строго возрастающе; восстановление старой
// версии добавляет новую запись и никогда не мутирует существующие.
type Version struct {
	CreatedAt   time.Time  `json:"created_at"`   // CreatedAt момент создания версии (строго возрастает per note)
	ID          string     `json:"id"`           // ID уникальный идентификатор версии (UUID)
	NoteID      string     `json:"note_id"`      // NoteID идентификатор заметки
	ChangeType  ChangeType `json:"change_type"`  // ChangeType причина появления версии
	ContentHash string     `json:"content_hash"` // ContentHash SHA-256 контента (hex), ключ дедупликации
	Tag         string     `json:"tag,omitempty"` // Tag опциональная пользовательская метка
	DiffStats   DiffStats  `json:"diff_stats"`   // DiffStats статистика относительно предыдущей версии
	SizeBytes   int64      `json:"size_bytes"`   // SizeBytes размер контента в байтах
}
