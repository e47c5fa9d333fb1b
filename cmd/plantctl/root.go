package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plantdiary/internal/config"
	"plantdiary/internal/kv"
	"plantdiary/internal/service"
	"plantdiary/internal/storage"
)

// app holds the services the commands run against. It is filled in before any
// subcommand runs.
type app struct {
	dbPath string
	db     *sql.DB

	plants    service.PlantService
	records   service.RecordService
	reminders service.ReminderService
	stats     service.StatsService
	sync      service.SyncService
	storage   service.StorageService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "plantctl",
		Short: "Plant diary on the command line",
		Long: `plantctl tracks plants, their care records and reminders, and prints
statistics over them. Data is kept in the same SQLite store the API server uses.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "database file (overrides DB_PATH)")

	rootCmd.AddCommand(
		newPlantCmd(a),
		newRecordCmd(a),
		newReminderCmd(a),
		newStatsCmd(a),
		newHeatmapCmd(a),
		newCleanupCmd(a),
		newInfoCmd(a),
		newSyncCmd(a),
	)
	return rootCmd
}

// open loads the configuration and builds the services over the SQLite store.
func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Logs go to stderr so command output stays clean.
	level := cfg.LogLevel
	if level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := kv.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := kv.Migrate(db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.db = db

	repos := storage.New(kv.NewStore(kv.NewSQLiteBackend(db, cfg.StorageLimitBytes), kv.LogNotifier{Logger: logger}))
	opts := service.Options{
		PageSize:      cfg.PageSize,
		RecentRecords: cfg.RecentRecords,
		TrendDays:     cfg.TrendDays,
	}
	markdown := service.NewMarkdown()

	a.plants = service.NewPlantService(repos, markdown, opts)
	a.records = service.NewRecordService(repos, markdown)
	a.reminders = service.NewReminderService(repos)
	a.stats = service.NewStatsService(repos, opts)
	a.sync = service.NewSyncService(repos)
	a.storage = service.NewStorageService(repos)
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
