package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/models"
)

func (c *Cli) runVersions(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: notesync versions <id>")
	}
	noteID := args[0]

	versions, err := c.history.ListVersions(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to list versions: %w", err)
	}

	if len(versions) == 0 {
		c.io.Println("No versions recorded for this note.")
		return nil
	}

	c.io.Printf("Found %d version(s):\n", len(versions))
	c.io.Println()
	for i, v := range versions {
		c.io.Printf("%d. %s  %s  %s\n", i+1, v.CreatedAt.Format(time.RFC3339), v.ChangeType, v.ID)
		c.io.Printf("   size=%dB  %s\n", v.SizeBytes, formatDiffStats(v.DiffStats))
	}
	return nil
}

func (c *Cli) runDiff(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: notesync diff <id> <verA> <verB>")
	}
	noteID, versionA, versionB := args[0], args[1], args[2]

	stats, err := c.history.CompareVersions(ctx, noteID, versionA, versionB)
	if err != nil {
		return fmt.Errorf("failed to compare versions: %w", err)
	}

	if stats.IsZero() {
		c.io.Println("Versions are identical.")
		return nil
	}

	c.io.Printf("Lines: +%d -%d ~%d\n", stats.LinesAdded, stats.LinesRemoved, stats.LinesChanged)
	c.io.Printf("Chars: +%d -%d\n", stats.CharsAdded, stats.CharsRemoved)
	return nil
}

func (c *Cli) runRestore(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: notesync restore <id> <version>")
	}
	noteID, versionID := args[0], args[1]

	restored, err := c.history.RestoreVersion(ctx, noteID, versionID)
	if err != nil {
		return fmt.Errorf("failed to restore version: %w", err)
	}
	if restored == nil {
		c.io.Println("Note is already at this version.")
		return nil
	}

	// Обновляем снапшот заметки из восстановленной реплики
	text, err := c.documents.Materialize(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to materialize note: %w", err)
	}
	note, err := c.notes.GetNote(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	note.Text = text
	note.UpdatedAt = time.Now()
	if err := c.notes.SaveNote(ctx, note); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	if err := c.enqueueSave(ctx, note); err != nil {
		return err
	}

	c.io.Println("✓ Note restored")
	c.io.Printf("New version: %s\n", restored.ID)
	return nil
}

func formatDiffStats(d models.DiffStats) string {
	if d.IsZero() {
		return "no changes"
	}
	return fmt.Sprintf("lines +%d -%d ~%d, chars +%d -%d",
		d.LinesAdded, d.LinesRemoved, d.LinesChanged, d.CharsAdded, d.CharsRemoved)
}
