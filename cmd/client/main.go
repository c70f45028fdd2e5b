package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/cli"
	"github.com/iudanet/notesync/internal/client/connectivity"
	"github.com/iudanet/notesync/internal/client/document"
	"github.com/iudanet/notesync/internal/client/history"
	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	"github.com/iudanet/notesync/internal/client/syncer"
	"github.com/iudanet/notesync/internal/crypto"
	"github.com/iudanet/notesync/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "notesync-client.db", "Path to local database")
	token := flag.String("token", "", "Bearer token for the remote store (or NOTESYNC_TOKEN)")
	encrypt := flag.Bool("encrypt", false, "Encrypt envelopes before upload (convergent encryption)")
	passphraseFile := flag.String("passphrase-file", "", "Path to file with the encryption passphrase")
	debounce := flag.Duration("debounce", 2*time.Second, "Edit debounce before enqueueing a version delta")
	probeInterval := flag.Duration("probe-interval", 30*time.Second, "Connectivity probe interval")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}
	command := args[0]

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	authToken := *token
	if authToken == "" {
		authToken = os.Getenv("NOTESYNC_TOKEN")
	}
	apiClient := api.NewClient(*serverURL, authToken)

	sealer, err := buildSealer(stdio, *encrypt, *passphraseFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	monitor := connectivity.NewMonitor(apiClient, connectivity.Config{
		ProbeInterval: *probeInterval,
	}, logger)
	defer monitor.Destroy()

	// Порядок сборки разруливает взаимные ссылки: дельты документов
	// уходят в движок через замыкание, движок после доставки пишет
	// историю версий
	var engine syncer.Engine

	documents, err := document.NewManager(ctx, store, store, store,
		func(ctx context.Context, noteID string, update []byte, snapshot string) error {
			payload, err := models.EncodePayload(models.VersionPayload{
				NoteID:      noteID,
				UpdateBytes: update,
				Snapshot:    []byte(snapshot),
			})
			if err != nil {
				return err
			}
			_, err = engine.Enqueue(ctx, syncer.OperationSpec{
				NoteID:   noteID,
				Type:     models.OperationVersion,
				Priority: models.PriorityNormal,
				Payload:  payload,
			})
			return err
		},
		document.Config{DebounceInterval: *debounce}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init document manager: %v\n", err)
		os.Exit(1)
	}
	defer documents.Destroy()

	historyService := history.NewService(store, store, documents, apiClient, logger)

	engine = syncer.NewEngine(store, apiClient, monitor, syncer.Config{
		Sealer: sealer,
		UploadedFunc: func(op *models.QueuedOperation, contentID string) {
			if op.Type != models.OperationVersion {
				return
			}
			p, err := models.DecodeVersionPayload(op.Payload)
			if err != nil {
				logger.Warn("failed to decode delivered version payload", "error", err)
				return
			}
			// RecordVersion дедуплицирует по хэшу, повторная доставка
			// той же дельты историю не раздувает
			if _, err := historyService.RecordVersion(ctx, p.NoteID, p.Snapshot, models.ChangeTypeEdited); err != nil {
				logger.Warn("failed to record delivered version", "error", err)
			}
		},
	}, logger)
	defer engine.Destroy()

	app := cli.New(stdio, store, engine, monitor, documents, historyService)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildSealer собирает конвергентный шифратор конвертов.
// Passphrase ищется в файле, затем в NOTESYNC_PASSPHRASE, затем
// запрашивается интерактивно.
func buildSealer(io iocli.IO, encrypt bool, passphraseFile string) (syncer.Sealer, error) {
	if !encrypt && passphraseFile == "" {
		return nil, nil
	}

	var passphrase string
	switch {
	case passphraseFile != "":
		content, err := os.ReadFile(passphraseFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase file: %w", err)
		}
		passphrase = strings.TrimSpace(string(content))
	case os.Getenv("NOTESYNC_PASSPHRASE") != "":
		passphrase = os.Getenv("NOTESYNC_PASSPHRASE")
	default:
		var err error
		passphrase, err = io.ReadPassword("Encryption passphrase: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
	}
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}

	key, err := crypto.DeriveConvergentKey(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}
	return crypto.NewConvergent(key)
}

func printVersion() {
	fmt.Printf("notesync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
