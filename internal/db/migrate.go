package db

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	log "log/slog"
	"net/url"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrateUp applies every pending migration for cfg.Driver.
func MigrateUp(cfg config.DBConfig) error {
	return runMigration(cfg, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back the given number of migrations. steps <= 0 rolls
// back everything.
func MigrateDown(cfg config.DBConfig, steps int) error {
	return runMigration(cfg, func(m *migrate.Migrate) error {
		if steps <= 0 {
			return m.Down()
		}
		return m.Steps(-steps)
	})
}

func runMigration(cfg config.DBConfig, apply func(*migrate.Migrate) error) error {
	dir, dbURL, err := migrationTarget(cfg)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(migrationsFS, "migrations/"+dir)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := apply(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}
	log.Info("Migrations applied", "driver", cfg.Driver, "version", version, "dirty", dirty)
	return nil
}

func migrationTarget(cfg config.DBConfig) (string, string, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Path:     "/" + cfg.DataBase,
			RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
		}
		return "postgres", u.String(), nil
	case DriverSQLite:
		return "sqlite", "sqlite3://" + cfg.Path, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
