package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// A single writer keeps read-modify-write cycles strictly ordered.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the key-value table.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// SQLiteBackend stores every key as one row of the kv table.
type SQLiteBackend struct {
	db    *sql.DB
	limit int64
}

// NewSQLiteBackend creates a backend over an already migrated database.
// limit is the maximum total value size in bytes; zero disables the quota.
func NewSQLiteBackend(db *sql.DB, limit int64) *SQLiteBackend {
	return &SQLiteBackend{db: db, limit: limit}
}

// DB returns the underlying database connection.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

// Get returns the value stored under key.
func (b *SQLiteBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Set replaces the value under key inside a transaction so a quota rejection leaves the old value intact.
func (b *SQLiteBackend) Set(key string, value []byte) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin write: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if b.limit > 0 {
		var others int64
		err := tx.QueryRow("SELECT COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0) FROM kv WHERE key <> ?", key).Scan(&others)
		if err != nil {
			return fmt.Errorf("failed to measure storage: %w", err)
		}
		if others+int64(len(key)+len(value)) > b.limit {
			return ErrQuotaExceeded
		}
	}

	_, err = tx.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return tx.Commit()
}

// Remove deletes key.
func (b *SQLiteBackend) Remove(key string) error {
	if _, err := b.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Clear deletes every key.
func (b *SQLiteBackend) Clear() error {
	if _, err := b.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

// Info reports stored keys ordered by name and their total size.
func (b *SQLiteBackend) Info() (Info, error) {
	rows, err := b.db.Query("SELECT key, LENGTH(key) + LENGTH(value) FROM kv ORDER BY key")
	if err != nil {
		return Info{}, fmt.Errorf("failed to query storage info: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	info := Info{Keys: []string{}, LimitSize: b.limit}
	for rows.Next() {
		var key string
		var size int64
		if err := rows.Scan(&key, &size); err != nil {
			return Info{}, fmt.Errorf("failed to scan storage info: %w", err)
		}
		info.Keys = append(info.Keys, key)
		info.CurrentSize += size
	}
	if err := rows.Err(); err != nil {
		return Info{}, err
	}

	info.UsagePercent = usagePercent(info.CurrentSize, info.LimitSize)
	return info, nil
}
