package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"plantdiary/internal/config"
	"plantdiary/internal/http"
	"plantdiary/internal/kv"
	"plantdiary/internal/service"
	"plantdiary/internal/storage"
)

// General API information
//
// This API tracks plants, their care records and reminders, and serves statistics over them.
// All data lives in a local SQLite key-value store.

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	var backend kv.Backend
	if cfg.StoreBackend == "memory" {
		backend = kv.NewMemoryBackend(cfg.StorageLimitBytes)
		slog.Warn("Using in-memory store, data is lost on exit", "limit_bytes", cfg.StorageLimitBytes)
	} else {
		// Initialize database
		db, err := kv.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			_ = db.Close()
		}()

		if err := kv.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		slog.Info("Database initialized", "path", cfg.DBPath, "limit_bytes", cfg.StorageLimitBytes)
		backend = kv.NewSQLiteBackend(db, cfg.StorageLimitBytes)
	}

	store := kv.NewStore(backend, kv.LogNotifier{Logger: logger})
	repos := storage.New(store)

	svcOpts := service.Options{
		PageSize:      cfg.PageSize,
		RecentRecords: cfg.RecentRecords,
		TrendDays:     cfg.TrendDays,
	}
	markdown := service.NewMarkdown()

	// Create router with dependencies
	deps := &http.Deps{
		Plants:    service.NewPlantService(repos, markdown, svcOpts),
		Records:   service.NewRecordService(repos, markdown),
		Reminders: service.NewReminderService(repos),
		Stats:     service.NewStatsService(repos, svcOpts),
		Sync:      service.NewSyncService(repos),
		Storage:   service.NewStorageService(repos),
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
