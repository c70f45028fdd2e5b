package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/notesync/internal/server/handlers"
	"github.com/iudanet/notesync/internal/server/middleware"
	"github.com/iudanet/notesync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "notesync-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "HS256 secret; empty disables auth (or NOTESYNC_JWT_SECRET)")
	issueToken := flag.String("issue-token", "", "Mint an access token for the given subject and exit")
	tokenTTL := flag.Duration("token-ttl", 30*24*time.Hour, "Lifetime of minted tokens")
	maxBlobBytes := flag.Int64("max-blob-bytes", handlers.DefaultMaxBlobBytes, "Maximum size of a single blob")
	maxStorageBytes := flag.Int64("max-storage-bytes", 0, "Total storage quota in bytes, 0 for unlimited")
	rateLimit := flag.Int("rate-limit", 300, "Max requests per client per minute, 0 disables")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("NOTESYNC_JWT_SECRET")
	}

	if *issueToken != "" {
		if secret == "" {
			fmt.Fprintln(os.Stderr, "Error: -issue-token requires a JWT secret")
			os.Exit(1)
		}
		token, err := handlers.GenerateAccessToken(handlers.JWTConfig{
			Secret:   []byte(secret),
			TokenTTL: *tokenTTL,
		}, *issueToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to mint token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	blobHandler := handlers.NewBlobHandler(store, logger, *maxBlobBytes, *maxStorageBytes)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Блоб-эндпоинты опционально закрыты JWT; health остается открытым,
	// это reachability probe для клиентов
	var blobs http.Handler = blobMux(blobHandler)
	if secret != "" {
		blobs = middleware.AuthMiddleware(logger, handlers.JWTConfig{
			Secret:   []byte(secret),
			TokenTTL: *tokenTTL,
		})(blobs)
	}
	mux.Handle("/api/v1/blobs", blobs)
	mux.Handle("/api/v1/blobs/", blobs)

	var handler http.Handler = mux
	if *rateLimit > 0 {
		handler = middleware.RateLimitMiddleware(*rateLimit, time.Minute, logger)(handler)
	}
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("notesync server starting",
			"addr", *addr,
			"version", Version,
			"auth", secret != "",
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown по SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

// blobMux маршрутизирует блоб-эндпоинты
func blobMux(h *handlers.BlobHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/blobs", h.Upload)
	mux.HandleFunc("GET /api/v1/blobs/{contentID}", h.Download)
	return mux
}

func printVersion() {
	fmt.Printf("notesync server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
