package kv

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T, limit int64) *SQLiteBackend {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewSQLiteBackend(db, limit)
}

func TestOpenSQLite(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "valid path",
			path:    filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
		},
		{
			name:    "invalid path",
			path:    "/invalid/path/to/db.db",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := OpenSQLite(tt.path)

			if tt.wantErr {
				if err == nil {
					t.Errorf("OpenSQLite() expected error, got nil")
				}
				if db != nil {
					_ = db.Close()
				}
				return
			}

			if err != nil {
				t.Fatalf("OpenSQLite() unexpected error: %v", err)
			}
			if db.Stats().MaxOpenConnections != 1 {
				t.Errorf("MaxOpenConnections = %v, want 1", db.Stats().MaxOpenConnections)
			}
			_ = db.Close()
		})
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	for i := 0; i < 2; i++ {
		if err := Migrate(db); err != nil {
			t.Fatalf("Migrate() run %d error = %v", i+1, err)
		}
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check table: %v", err)
	}
	if count != 1 {
		t.Errorf("kv table count = %d, want 1", count)
	}
}

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	b := openTestSQLite(t, 0)

	if _, err := b.Get("plants"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrKeyNotFound", err)
	}

	if err := b.Set("plants", []byte(`[1]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := b.Set("plants", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := b.Get("plants")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("Get() = %s, want [1,2]", got)
	}

	if err := b.Remove("plants"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := b.Get("plants"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after Remove error = %v, want ErrKeyNotFound", err)
	}
}

func TestSQLiteBackend_Clear(t *testing.T) {
	b := openTestSQLite(t, 0)

	for _, key := range []string{KeyPlants, KeyRecords, KeyReminders} {
		if err := b.Set(key, []byte(`[]`)); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	info, err := b.Info()
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if len(info.Keys) != 0 || info.CurrentSize != 0 {
		t.Errorf("Info() after Clear = %+v, want empty", info)
	}
}

func TestSQLiteBackend_Quota(t *testing.T) {
	b := openTestSQLite(t, 20)

	if err := b.Set("a", []byte("0123456789")); err != nil {
		t.Fatalf("Set() within quota error = %v", err)
	}
	if err := b.Set("b", []byte("0123456789")); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("Set() over quota error = %v, want ErrQuotaExceeded", err)
	}
	// Rewriting an existing key only counts its new size.
	if err := b.Set("a", []byte("01234567890123456")); err != nil {
		t.Fatalf("Set() replacing key error = %v", err)
	}
	if err := b.Set("a", []byte("012345678901234567890")); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("Set() oversize replacement error = %v, want ErrQuotaExceeded", err)
	}

	got, err := b.Get("a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "01234567890123456" {
		t.Errorf("Get() after rejected write = %s, want previous value", got)
	}

	info, err := b.Info()
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.CurrentSize != 18 {
		t.Errorf("CurrentSize = %d, want 18", info.CurrentSize)
	}
	if info.UsagePercent != 90 {
		t.Errorf("UsagePercent = %v, want 90", info.UsagePercent)
	}
}
