package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/client/document"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/syncer"
	"github.com/iudanet/notesync/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	var title, text string
	var err error

	switch len(args) {
	case 0:
		title, err = c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		text, err = c.io.ReadInput("Text: ")
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
	case 1:
		title = args[0]
	default:
		title = args[0]
		text = strings.Join(args[1:], " ")
	}

	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	now := time.Now()
	note := &models.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.notes.SaveNote(ctx, note); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	// Засеваем CRDT-реплику из начального текста
	if _, err := c.documents.GetOrCreateReplica(ctx, note.ID); err != nil {
		return fmt.Errorf("failed to create replica: %w", err)
	}

	if _, err := c.history.RecordVersion(ctx, note.ID, []byte(text), models.ChangeTypeCreated); err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	if err := c.enqueueSave(ctx, note); err != nil {
		return err
	}

	c.io.Println("✓ Note added")
	c.io.Printf("ID: %s\n", note.ID)
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: notesync edit <id> <text>")
	}
	noteID := args[0]
	text := strings.Join(args[1:], " ")

	note, err := c.notes.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return fmt.Errorf("note not found: %s", noteID)
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	// Правка идет через CRDT-реплику: менеджер документов сам поставит
	// version-дельту в очередь после debounce-окна
	err = c.documents.ApplyLocalEdit(ctx, noteID, document.Edit{ReplaceAll: true, Text: text})
	if err != nil {
		return fmt.Errorf("failed to apply edit: %w", err)
	}

	note.Text = text
	note.UpdatedAt = time.Now()
	if err := c.notes.SaveNote(ctx, note); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	if _, err := c.history.RecordVersion(ctx, noteID, []byte(text), models.ChangeTypeEdited); err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	if err := c.enqueueSave(ctx, note); err != nil {
		return err
	}

	c.io.Println("✓ Note updated")
	return nil
}

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: notesync show <id>")
	}
	noteID := args[0]

	note, err := c.notes.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return fmt.Errorf("note not found: %s", noteID)
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	// Текст берем из реплики: она может быть новее снапшота в Note,
	// если туда уже влит remote update
	text, err := c.documents.Materialize(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to materialize note: %w", err)
	}

	c.io.Printf("Title:   %s\n", note.Title)
	c.io.Printf("ID:      %s\n", note.ID)
	c.io.Printf("Created: %s\n", note.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Updated: %s\n", note.UpdatedAt.Format(time.RFC3339))
	c.io.Println()
	c.io.Println(text)
	return nil
}

func (c *Cli) runList(ctx context.Context) error {
	notes, err := c.notes.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		c.io.Println("No notes found.")
		c.io.Println()
		c.io.Println("Use 'notesync add' to create your first note.")
		return nil
	}

	c.io.Printf("Found %d note(s):\n", len(notes))
	c.io.Println()
	for i, note := range notes {
		c.io.Printf("%d. %s\n", i+1, note.Title)
		c.io.Printf("   ID:      %s\n", note.ID)
		c.io.Printf("   Updated: %s\n", note.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: notesync delete <id>")
	}
	noteID := args[0]

	if err := c.notes.DeleteNote(ctx, noteID); err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return fmt.Errorf("note not found: %s", noteID)
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	payload, err := models.EncodePayload(models.DeletePayload{
		NoteID:    noteID,
		DeletedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	// Tombstone важнее обычных сохранений: high выигрывает слот у normal,
	// но FIFO внутри заметки не нарушается
	_, err = c.engine.Enqueue(ctx, syncer.OperationSpec{
		NoteID:   noteID,
		Type:     models.OperationDelete,
		Priority: models.PriorityHigh,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue delete: %w", err)
	}

	c.io.Println("✓ Note deleted")
	return nil
}

func (c *Cli) runShare(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: notesync share <id> <user> [read|write]")
	}
	noteID := args[0]
	recipient := args[1]
	access := models.AccessRead
	if len(args) > 2 {
		access = args[2]
	}
	if access != models.AccessRead && access != models.AccessWrite {
		return fmt.Errorf("invalid access level: %s (use read or write)", access)
	}

	if _, err := c.notes.GetNote(ctx, noteID); err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return fmt.Errorf("note not found: %s", noteID)
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	payload, err := models.EncodePayload(models.SharePayload{
		Grant: models.ShareGrant{
			NoteID:    noteID,
			Recipient: recipient,
			Access:    access,
			GrantedAt: time.Now(),
		},
	})
	if err != nil {
		return err
	}

	_, err = c.engine.Enqueue(ctx, syncer.OperationSpec{
		NoteID:   noteID,
		Type:     models.OperationShare,
		Priority: models.PriorityNormal,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue share: %w", err)
	}

	c.io.Printf("✓ Note shared with %s (%s)\n", recipient, access)
	return nil
}

// enqueueSave ставит в очередь полный снапшот заметки
func (c *Cli) enqueueSave(ctx context.Context, note *models.Note) error {
	payload, err := models.EncodePayload(models.SavePayload{Note: *note})
	if err != nil {
		return err
	}
	_, err = c.engine.Enqueue(ctx, syncer.OperationSpec{
		NoteID:   note.ID,
		Type:     models.OperationSave,
		Priority: models.PriorityNormal,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue save: %w", err)
	}
	return nil
}
