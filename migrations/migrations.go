// Package migrations creates and evolves the database schema. Migrations are
// idempotent and tracked in a migrations table so each one runs exactly once.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niiakoadjei/BlogApp/internal/database"
)

// Migration is a single schema change identified by name.
type Migration struct {
	Name string
	Up   func(ctx context.Context, tx *sql.Tx) error
}

// Migrator runs pending migrations in order.
type Migrator struct {
	db         *database.Pool
	migrations []Migration
}

// NewMigrator creates a migrator with the full migration list.
func NewMigrator(db *database.Pool) *Migrator {
	return &Migrator{
		db:         db,
		migrations: allMigrations(),
	}
}

// Run applies all pending migrations.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return err
	}

	applied, err := m.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if applied[migration.Name] {
			continue
		}

		start := time.Now()
		err := m.db.Transaction(ctx, func(tx *sql.Tx) error {
			if err := migration.Up(ctx, tx); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO migrations (name, applied_at) VALUES ($1, $2)`,
				migration.Name, time.Now())
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", migration.Name, err)
		}

		log.Info().
			Str("migration", migration.Name).
			Dur("duration", time.Since(start)).
			Msg("Migration applied")
	}

	return nil
}

func (m *Migrator) ensureMigrationsTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS migrations (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            applied_at TIMESTAMPTZ NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT name FROM migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan migration name: %w", err)
		}
		applied[name] = true
	}

	return applied, rows.Err()
}
