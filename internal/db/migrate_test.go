package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/db"
	"github.com/MyelinBots/stillalive-go/internal/db/dbtest"
)

func TestMigrateUpDown(t *testing.T) {
	cfg := config.DBConfig{
		Driver: db.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "migrate.db"),
	}

	if err := db.MigrateUp(cfg); err != nil {
		t.Fatalf("first up: %v", err)
	}
	// a second run has nothing to do and must not fail
	if err := db.MigrateUp(cfg); err != nil {
		t.Fatalf("second up: %v", err)
	}

	database, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, table := range []string{"checkins", "users"} {
		if !database.DB.Migrator().HasTable(table) {
			t.Errorf("table %s missing after up", table)
		}
	}
	_ = database.Close()

	if err := db.MigrateDown(cfg, 0); err != nil {
		t.Fatalf("down: %v", err)
	}

	database, err = db.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer database.Close()
	if database.DB.Migrator().HasTable("checkins") {
		t.Error("checkins still present after down")
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := db.Open(config.DBConfig{Driver: "oracle"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
	if err := db.MigrateUp(config.DBConfig{Driver: "oracle"}); err == nil {
		t.Error("expected migrate error for unsupported driver")
	}
}

func TestPing(t *testing.T) {
	database := dbtest.NewSQLite(t)
	if err := database.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestPostgresDSN(t *testing.T) {
	dsn := db.PostgresDSN(config.DBConfig{
		Host: "db", User: "alive", Password: "pw", DataBase: "stillalive", Port: 5432, SSLMode: "disable",
	})
	want := "host=db user=alive password=pw dbname=stillalive port=5432 sslmode=disable TimeZone=UTC connect_timeout=10"
	if dsn != want {
		t.Errorf("PostgresDSN() = %q, want %q", dsn, want)
	}
}
