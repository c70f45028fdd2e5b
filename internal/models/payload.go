package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SavePayload содержимое операции save: полный снапшот заметки.
type SavePayload struct {
	Note Note `json:"note"` // Note снапшот заметки на момент постановки в очередь
}

// DeletePayload содержимое операции delete: tombstone заметки.
type DeletePayload struct {
	DeletedAt time.Time `json:"deleted_at"` // DeletedAt время удаления
	NoteID    string    `json:"note_id"`    // NoteID удаляемая заметка
}

// SharePayload содержимое операции share.
type SharePayload struct {
	Grant ShareGrant `json:"grant"` // Grant выдача доступа
}

// VersionPayload содержимое операции version: бинарная CRDT-дельта
// и материализованный снапшот для записи в историю версий.
type VersionPayload struct {
	UpdateBytes []byte `json:"update_bytes"` // UpdateBytes сериализованная дельта реплики
	Snapshot    []byte `json:"snapshot"`     // Snapshot материализованный текст после применения дельты
	NoteID      string `json:"note_id"`      // NoteID заметка, к которой относится дельта
}

// EncodePayload сериализует типизированный payload операции.
func EncodePayload(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

// DecodeSavePayload десериализует payload операции save.
func DecodeSavePayload(data []byte) (*SavePayload, error) {
	var p SavePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode save payload: %w", err)
	}
	return &p, nil
}

// DecodeDeletePayload десериализует payload операции delete.
func DecodeDeletePayload(data []byte) (*DeletePayload, error) {
	var p DeletePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode delete payload: %w", err)
	}
	return &p, nil
}

// DecodeSharePayload десериализует payload операции share.
func DecodeSharePayload(data []byte) (*SharePayload, error) {
	var p SharePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode share payload: %w", err)
	}
	return &p, nil
}

// DecodeVersionPayload десериализует payload операции version.
func DecodeVersionPayload(data []byte) (*VersionPayload, error) {
	var p VersionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode version payload: %w", err)
	}
	return &p, nil
}
