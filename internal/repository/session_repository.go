package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/niiakoadjei/BlogApp/internal/database"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// SessionRepository defines the operations for managing refresh sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByJWTID(ctx context.Context, jwtID string) (*models.Session, error)
	IsValidSession(ctx context.Context, jwtID string) (bool, error)
	DeleteByJWTID(ctx context.Context, jwtID string) error
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
	GetActiveByUserID(ctx context.Context, userID int64) ([]*models.Session, error)
}

// sessionRepository is the PostgreSQL implementation of SessionRepository.
type sessionRepository struct {
	db *database.Pool
}

// NewSessionRepository creates a session repository backed by the given pool.
func NewSessionRepository(db *database.Pool) SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts a new session row.
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
        INSERT INTO sessions (id, user_id, jwt_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.JWTID,
		session.ExpiresAt,
		session.CreatedAt,
	)
	utils.LogDBQuery(query, []interface{}{session.ID, session.UserID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetByJWTID retrieves a session by the refresh token ID it tracks.
func (r *sessionRepository) GetByJWTID(ctx context.Context, jwtID string) (*models.Session, error) {
	query := `
        SELECT id, user_id, jwt_id, expires_at, created_at
        FROM sessions
        WHERE jwt_id = $1
    `

	session := &models.Session{}

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, jwtID).Scan(
		&session.ID,
		&session.UserID,
		&session.JWTID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	utils.LogDBQuery(query, []interface{}{jwtID}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Session", jwtID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// IsValidSession reports whether an unexpired session exists for the token ID.
func (r *sessionRepository) IsValidSession(ctx context.Context, jwtID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM sessions WHERE jwt_id = $1 AND expires_at > $2)`

	var valid bool

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, jwtID, time.Now()).Scan(&valid)
	utils.LogDBQuery(query, []interface{}{jwtID}, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check session validity: %w", err)
	}

	return valid, nil
}

// DeleteByJWTID removes the session tracking the given token ID.
func (r *sessionRepository) DeleteByJWTID(ctx context.Context, jwtID string) error {
	query := `DELETE FROM sessions WHERE jwt_id = $1`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, jwtID)
	utils.LogDBQuery(query, []interface{}{jwtID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return checkRowsAffected(result, "Session", jwtID)
}

// DeleteByUserID removes all sessions of a user, signing them out everywhere.
func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM sessions WHERE user_id = $1`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, userID)
	utils.LogDBQuery(query, []interface{}{userID}, time.Since(start), err)

	if err != nil {
		return 0, fmt.Errorf("failed to delete user sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// DeleteExpired removes all expired sessions and returns how many were deleted.
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= $1`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, time.Now())
	utils.LogDBQuery(query, nil, time.Since(start), err)

	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// GetActiveByUserID returns all unexpired sessions of a user.
func (r *sessionRepository) GetActiveByUserID(ctx context.Context, userID int64) ([]*models.Session, error) {
	query := `
        SELECT id, user_id, jwt_id, expires_at, created_at
        FROM sessions
        WHERE user_id = $1 AND expires_at > $2
        ORDER BY created_at DESC
    `

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, userID, time.Now())
	utils.LogDBQuery(query, []interface{}{userID}, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to get active sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.JWTID,
			&session.ExpiresAt,
			&session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}
