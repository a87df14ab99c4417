package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"soundbridge/api"
	"soundbridge/auth"
	"soundbridge/moderation"
	"soundbridge/observability"
	"soundbridge/presence"
	"soundbridge/repositories"
	"soundbridge/runtime/workers"
	"soundbridge/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires everything together and owns the lifecycle, so defers fire
// on every exit path and main stays a one-liner.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge search index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	if err = os.MkdirAll(config.MediaDir, 0o755); err != nil {
		return fmt.Errorf("media directory: %w", err)
	}

	// 3. Repositories & Services
	users := repositories.NewUserRepository(db)
	requests := repositories.NewFriendRequestRepository(db)
	messages := repositories.NewMessageRepository(db, log)
	catalog := repositories.NewCatalogRepository(db, index, log)

	censor, err := moderation.NewDefaultModerator(config.ModerationCharReplacement)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}
	hub := presence.NewHub(log, messages, censor)

	monitor, err := observability.NewMonitor()
	if err != nil {
		return fmt.Errorf("process monitor failed: %w", err)
	}
	issuer := auth.NewIssuer(config.JWTSecret, config.TokenTTL)
	authService := services.NewAuthService(users, issuer,
		config.AdminEmail, config.AdminPasswordHash, log)
	friendService := services.NewFriendService(users, requests, log)
	messageService := services.NewMessageService(messages)
	statsService := services.NewStatsService(catalog, users, monitor)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewTelemetryWorker(log, monitor, config.TelemetryInterval),
		workers.NewStorageGCWorker(log, db, config.StorageGCInterval),
	)
	go sup.Run(ctx)

	// 6. HTTP & Websocket server
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	server := api.NewServer(log, hub, authService, friendService,
		messageService, statsService, catalog, config.MediaDir)
	server.Register(app)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting server", "address", address, "at", time.Now().UTC())
		if err := app.Listen(address); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
