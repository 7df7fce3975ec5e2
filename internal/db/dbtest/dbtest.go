// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/db"
)

// NewSQLite returns a migrated database in t's temp dir, closed on cleanup.
func NewSQLite(t testing.TB) *db.DB {
	t.Helper()

	cfg := config.DBConfig{
		Driver: db.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "stillalive_test.db"),
	}
	if err := db.MigrateUp(cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
