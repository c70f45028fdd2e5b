package models

import "time"

// Note представляет заметку в локальном хранилище.
// Текст здесь - материализованный снапшот CRDT-реплики; сама реплика
// хранится отдельно в виде сериализованного состояния.
type Note struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания заметки
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего локального изменения
	ID        string    `json:"id"`         // ID уникальный идентификатор заметки (UUID)
	Title     string    `json:"title"`      // Title заголовок заметки
	Text      string    `json:"text"`       // Text материализованный текст (plain snapshot)
	Deleted   bool      `json:"deleted"`    // Deleted флаг soft delete
}

// ShareGrant представляет выдачу доступа к заметке другому участнику.
// Доставляется в удаленное хранилище как обычная операция очереди.
type ShareGrant struct {
	GrantedAt time.Time `json:"granted_at"` // GrantedAt время выдачи доступа
	NoteID    string    `json:"note_id"`    // NoteID идентификатор заметки
	Recipient string    `json:"recipient"`  // Recipient идентификатор получателя доступа
	Access    string    `json:"access"`     // Access уровень доступа: "read" или "write"
}

// Уровни доступа для ShareGrant
const (
	AccessRead  = "read"
	AccessWrite = "write"
)
