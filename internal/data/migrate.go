package data

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite3/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// runMigrations applies all pending migrations for the given dialect.
func runMigrations(db *sql.DB, d string) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations/"+d)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	var dbDriver database.Driver
	switch d {
	case dialect.SQLite:
		dbDriver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case dialect.Postgres:
		// A borrowed connection goes back to the pool once migrations finish.
		ctx := context.Background()
		conn, connErr := db.Conn(ctx)
		if connErr != nil {
			return fmt.Errorf("failed to acquire migration connection: %w", connErr)
		}
		defer conn.Close()
		dbDriver, err = postgres.WithConnection(ctx, conn, &postgres.Config{})
	default:
		return fmt.Errorf("unsupported dialect %q", d)
	}
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	// The migrate instance is not closed: the sqlite3 driver would close db.
	m, err := migrate.NewWithInstance("iofs", sourceDriver, d, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
