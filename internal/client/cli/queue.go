package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	// Подтверждающий probe перед проходом: после долгого сна статус
	// монитора может быть устаревшим
	status := c.monitor.CheckNow(ctx)
	c.io.Printf("Connection: %s\n", status)

	results, err := c.engine.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if len(results) == 0 {
		c.io.Println("Nothing to synchronize.")
		return nil
	}

	var delivered, retried, failed int
	for _, r := range results {
		switch {
		case r.Success:
			delivered++
		case r.Permanent:
			failed++
		default:
			retried++
		}
	}

	c.io.Println()
	c.io.Printf("Delivered:          %d operation(s)\n", delivered)
	if retried > 0 {
		c.io.Printf("Scheduled retry:    %d operation(s)\n", retried)
	}
	if failed > 0 {
		c.io.Printf("Permanently failed: %d operation(s)\n", failed)
		c.io.Println()
		c.io.Println("Run 'notesync retry' to requeue failed operations.")
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	c.io.Printf("Connection: %s\n", c.monitor.Status())

	pending, err := c.engine.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending operations: %w", err)
	}
	failed, err := c.engine.FailedCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count failed operations: %w", err)
	}

	c.io.Printf("Pending:    %d operation(s)\n", pending)
	c.io.Printf("Failed:     %d operation(s)\n", failed)

	if c.engine.IsProcessing() {
		c.io.Println()
		c.io.Println("A sync pass is running right now.")
	}

	if pending == 0 && failed == 0 {
		c.io.Println()
		c.io.Println("✓ All changes delivered to the remote store")
		return nil
	}

	ops, err := c.engine.GetQueuedOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queued operations: %w", err)
	}

	c.io.Println()
	for _, op := range ops {
		line := fmt.Sprintf("  [%s] %s note=%s", op.Status, op.Type, op.NoteID)
		if op.RetryCount > 0 {
			line += fmt.Sprintf(" retries=%d/%d", op.RetryCount, op.MaxRetries)
		}
		if op.QuotaFlag {
			line += " (remote storage quota exceeded)"
		}
		if op.LastError != "" {
			line += fmt.Sprintf(" error=%q", op.LastError)
		}
		c.io.Println(line)
	}
	return nil
}

func (c *Cli) runRetry(ctx context.Context) error {
	count, err := c.engine.RetryFailed(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue operations: %w", err)
	}
	if count == 0 {
		c.io.Println("No failed operations to retry.")
		return nil
	}
	c.io.Printf("✓ Requeued %d operation(s)\n", count)
	c.io.Println("Run 'notesync sync' to process the queue.")
	return nil
}

func (c *Cli) runClearQueue(ctx context.Context) error {
	answer, err := c.io.ReadInput("Drop ALL queued operations? Undelivered changes will be lost [yes/no]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.engine.ClearQueue(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	c.io.Println("✓ Queue cleared")
	return nil
}
