// Package scripts provides database seeding. Seeds are tracked like
// migrations so each one runs exactly once, making seeding safe to run on
// new and existing databases alike.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/database"
)

// Seeder populates initial data.
type Seeder struct {
	db             *database.Pool
	passwordConfig *auth.PasswordConfig
}

// NewSeeder creates a seeder.
func NewSeeder(db *database.Pool, passwordConfig *auth.PasswordConfig) *Seeder {
	return &Seeder{db: db, passwordConfig: passwordConfig}
}

// seedFunc is a named, idempotent seed step.
type seedFunc struct {
	name string
	run  func(ctx context.Context, tx *sql.Tx) error
}

// SeedDatabase runs all pending seeds.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executed, err := s.executedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to read executed seeds: %w", err)
	}

	for _, seed := range s.seeds() {
		if executed[seed.name] {
			continue
		}

		start := time.Now()
		err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
			if err := seed.run(ctx, tx); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO seeds (name, executed_at) VALUES ($1, $2)`,
				seed.name, time.Now())
			return err
		})
		if err != nil {
			return fmt.Errorf("seed %s failed: %w", seed.name, err)
		}

		log.Info().
			Str("seed", seed.name).
			Dur("duration", time.Since(start)).
			Msg("Seed executed")
	}

	return nil
}

// seeds returns the ordered seed list.
func (s *Seeder) seeds() []seedFunc {
	return []seedFunc{
		{
			name: "001_demo_user",
			run:  s.seedDemoUser,
		},
	}
}

// seedDemoUser creates a demo account for development environments.
func (s *Seeder) seedDemoUser(ctx context.Context, tx *sql.Tx) error {
	hash, err := auth.HashPassword("password123", s.passwordConfig)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
        INSERT INTO users (username, email, password_hash, image_file, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT ON CONSTRAINT idx_username DO NOTHING
    `, "demo", "demo@example.com", hash, constants.DefaultProfileImage, now, now)

	return err
}

func (s *Seeder) createSeedsTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS seeds (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            executed_at TIMESTAMPTZ NOT NULL
        )
    `)
	return err
}

func (s *Seeder) executedSeeds(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM seeds`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	executed := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		executed[name] = true
	}

	return executed, rows.Err()
}
