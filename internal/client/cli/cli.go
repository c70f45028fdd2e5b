package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/notesync/internal/client/connectivity"
	"github.com/iudanet/notesync/internal/client/document"
	"github.com/iudanet/notesync/internal/client/history"
	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/syncer"
)

// Cli диспетчеризует команды пользователя на сервисы клиента.
// Вся работа с заметками локальна; доставка в удаленное хранилище
// идет через durable-очередь syncer'а.
type Cli struct {
	io        iocli.IO
	notes     storage.NoteStorage
	engine    syncer.Engine
	monitor   connectivity.Monitor
	documents document.Manager
	history   history.Service
}

func New(
	io iocli.IO,
	notes storage.NoteStorage,
	engine syncer.Engine,
	monitor connectivity.Monitor,
	documents document.Manager,
	historyService history.Service,
) *Cli {
	return &Cli{
		io:        io,
		notes:     notes,
		engine:    engine,
		monitor:   monitor,
		documents: documents,
		history:   historyService,
	}
}

// Run выполняет одну команду. Неизвестная команда - ошибка, usage
// печатает вызывающий.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "add":
		return c.runAdd(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "list":
		return c.runList(ctx)
	case "delete":
		return c.runDelete(ctx, args)
	case "share":
		return c.runShare(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "status":
		return c.runStatus(ctx)
	case "versions":
		return c.runVersions(ctx, args)
	case "diff":
		return c.runDiff(ctx, args)
	case "restore":
		return c.runRestore(ctx, args)
	case "retry":
		return c.runRetry(ctx)
	case "clear-queue":
		return c.runClearQueue(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage(io iocli.IO) {
	io.Println("notesync - offline-first note client")
	io.Println()
	io.Println("Usage:")
	io.Println("  notesync [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  --version                Show version information")
	io.Println("  --server URL             Server URL (default: http://localhost:8080)")
	io.Println("  --db PATH                Path to local database (default: notesync-client.db)")
	io.Println("  --token TOKEN            Bearer token for the remote store (or NOTESYNC_TOKEN)")
	io.Println("  --passphrase-file PATH   Enable convergent encryption with a passphrase from file")
	io.Println("  --debounce DURATION      Edit debounce before enqueueing a version delta (default: 2s)")
	io.Println("  --probe-interval DURATION  Connectivity probe interval (default: 30s)")
	io.Println()
	io.Println("Commands:")
	io.Println("  add [title] [text]        Add a new note")
	io.Println("  edit <id> <text>          Replace note text")
	io.Println("  show <id>                 Show a note")
	io.Println("  list                      List notes")
	io.Println("  delete <id>               Delete a note (soft delete, queued tombstone)")
	io.Println("  share <id> <user> [read|write]  Share a note")
	io.Println("  sync                      Process the sync queue now")
	io.Println("  status                    Show connectivity and queue counters")
	io.Println("  versions <id>             Show version history of a note")
	io.Println("  diff <id> <verA> <verB>   Compare two versions")
	io.Println("  restore <id> <version>    Restore a note to an old version")
	io.Println("  retry                     Requeue permanently failed operations")
	io.Println("  clear-queue               Drop all queued operations")
	io.Println()
	io.Println("Examples:")
	io.Println("  notesync add \"Shopping\" \"milk, eggs\"")
	io.Println("  notesync edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 \"milk, eggs, bread\"")
	io.Println("  notesync share b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 alice write")
	io.Println("  notesync --server https://notes.example.com sync")
}
