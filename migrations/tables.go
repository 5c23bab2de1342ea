package migrations

import (
	"context"
	"database/sql"
)

// allMigrations returns the ordered migration list. Constraint names follow
// the idx_<column> convention the repository layer relies on when mapping
// unique violations to fields.
func allMigrations() []Migration {
	return []Migration{
		{
			Name: "001_create_users",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
                    CREATE TABLE IF NOT EXISTS users (
                        id BIGSERIAL PRIMARY KEY,
                        username VARCHAR(50) NOT NULL,
                        email VARCHAR(255) NOT NULL,
                        password_hash TEXT NOT NULL,
                        image_file VARCHAR(255) NOT NULL DEFAULT 'default.jpg',
                        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                        CONSTRAINT idx_username UNIQUE (username),
                        CONSTRAINT idx_email UNIQUE (email)
                    )
                `)
				return err
			},
		},
		{
			Name: "002_create_posts",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
                    CREATE TABLE IF NOT EXISTS posts (
                        id BIGSERIAL PRIMARY KEY,
                        title VARCHAR(100) NOT NULL,
                        content TEXT NOT NULL,
                        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                        user_id BIGINT NOT NULL,
                        CONSTRAINT fk_posts_user FOREIGN KEY (user_id)
                            REFERENCES users (id) ON DELETE CASCADE
                    )
                `)
				if err != nil {
					return err
				}
				_, err = tx.ExecContext(ctx, `
                    CREATE INDEX IF NOT EXISTS idx_posts_created_at
                        ON posts (created_at DESC)
                `)
				if err != nil {
					return err
				}
				_, err = tx.ExecContext(ctx, `
                    CREATE INDEX IF NOT EXISTS idx_posts_user_id
                        ON posts (user_id)
                `)
				return err
			},
		},
		{
			Name: "003_create_sessions",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
                    CREATE TABLE IF NOT EXISTS sessions (
                        id UUID PRIMARY KEY,
                        user_id BIGINT NOT NULL,
                        jwt_id UUID NOT NULL,
                        expires_at TIMESTAMPTZ NOT NULL,
                        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                        CONSTRAINT idx_sessions_jwt_id UNIQUE (jwt_id),
                        CONSTRAINT fk_sessions_user FOREIGN KEY (user_id)
                            REFERENCES users (id) ON DELETE CASCADE
                    )
                `)
				if err != nil {
					return err
				}
				_, err = tx.ExecContext(ctx, `
                    CREATE INDEX IF NOT EXISTS idx_sessions_expires_at
                        ON sessions (expires_at)
                `)
				return err
			},
		},
	}
}
