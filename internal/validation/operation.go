package validation

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/notesync/internal/models"
)

// MaxPayloadSize максимальный размер payload операции в байтах.
// Защита от постановки в durable-очередь заведомо неподъемных данных.
const MaxPayloadSize = 16 * 1024 * 1024

// ValidateNoteID проверяет, что идентификатор заметки задан.
func ValidateNoteID(noteID string) error {
	if noteID == "" {
		return fmt.Errorf("note id cannot be empty")
	}
	return nil
}

// ValidateOperationType проверяет, что тип операции известен.
func ValidateOperationType(opType models.OperationType) error {
	switch opType {
	case models.OperationSave, models.OperationDelete, models.OperationShare, models.OperationVersion:
		return nil
	default:
		return fmt.Errorf("unknown operation type: %q", opType)
	}
}

// ValidatePriority проверяет, что приоритет известен.
// Пустой приоритет допустим - он трактуется как normal.
func ValidatePriority(p models.Priority) error {
	switch p {
	case "", models.PriorityLow, models.PriorityNormal, models.PriorityHigh, models.PriorityCritical:
		return nil
	default:
		return fmt.Errorf("unknown priority: %q", p)
	}
}

// ValidatePayload проверяет, что payload операции decodable для ее типа.
// Malformed payload - permanent ошибка: такая операция никогда не ретраится.
func ValidatePayload(opType models.OperationType, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload cannot be empty")
	}
	if len(payload) > MaxPayloadSize {
		return fmt.Errorf("payload exceeds %d bytes", MaxPayloadSize)
	}
	if !json.Valid(payload) {
		return fmt.Errorf("payload is not valid JSON")
	}

	switch opType {
	case models.OperationSave:
		p, err := models.DecodeSavePayload(payload)
		if err != nil {
			return err
		}
		if p.Note.ID == "" {
			return fmt.Errorf("save payload: note id cannot be empty")
		}
	case models.OperationDelete:
		p, err := models.DecodeDeletePayload(payload)
		if err != nil {
			return err
		}
		if p.NoteID == "" {
			return fmt.Errorf("delete payload: note id cannot be empty")
		}
	case models.OperationShare:
		p, err := models.DecodeSharePayload(payload)
		if err != nil {
			return err
		}
		if p.Grant.NoteID == "" {
			return fmt.Errorf("share payload: note id cannot be empty")
		}
		if p.Grant.Recipient == "" {
			return fmt.Errorf("share payload: recipient cannot be empty")
		}
		if p.Grant.Access != models.AccessRead && p.Grant.Access != models.AccessWrite {
			return fmt.Errorf("share payload: unknown access level %q", p.Grant.Access)
		}
	case models.OperationVersion:
		p, err := models.DecodeVersionPayload(payload)
		if err != nil {
			return err
		}
		if p.NoteID == "" {
			return fmt.Errorf("version payload: note id cannot be empty")
		}
		if len(p.UpdateBytes) == 0 {
			return fmt.Errorf("version payload: update bytes cannot be empty")
		}
	default:
		return fmt.Errorf("unknown operation type: %q", opType)
	}

	return nil
}
