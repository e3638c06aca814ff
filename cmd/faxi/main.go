package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twotaco/faxi/internal/api"
	"github.com/twotaco/faxi/internal/bus"
	"github.com/twotaco/faxi/internal/config"
	"github.com/twotaco/faxi/internal/intent"
	"github.com/twotaco/faxi/internal/processor"
	"github.com/twotaco/faxi/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("faxi starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Audit sink is optional. The decision path never depends on the
	// database; without one, audit records are dropped.
	var db *store.Store
	var sink intent.AuditSink = intent.NopSink{}
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		sink = db
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set, audit records will be dropped")
	}

	engine := intent.NewEngine(sink, slog.Default())

	// NATS
	busClient, err := bus.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer busClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	// Processor drives the main pipeline
	proc := processor.New(engine, busClient, cfg.ClarifyThreshold, slog.Default())

	// Subscribe to scanned document events
	if err := busClient.Subscribe(bus.SubjectDocumentScanned, proc.HandleDocumentScanned); err != nil {
		slog.Error("failed to subscribe to document events", "error", err)
		os.Exit(1)
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, engine, db)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if err := busClient.Publish(bus.SubjectRegistered, map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      cfg.Port,
	}); err != nil {
		slog.Warn("failed to publish registration", "error", err)
	}

	slog.Info("faxi ready", "port", cfg.Port, "clarify_threshold", cfg.ClarifyThreshold)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("faxi stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
