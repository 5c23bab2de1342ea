// Package repository implements data access for users, posts, and sessions
// on top of the PostgreSQL connection pool. Repositories translate driver
// errors into the application error taxonomy so callers never see raw
// database errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/database"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// UserRepository defines the operations for managing user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateImage(ctx context.Context, id int64, imageFile string) error
	ChangePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// userRepository is the PostgreSQL implementation of UserRepository.
type userRepository struct {
	db *database.Pool
}

// NewUserRepository creates a user repository backed by the given pool.
func NewUserRepository(db *database.Pool) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Username and email collisions are reported as
// duplicate errors through the unique constraints on the table.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users (username, email, password_hash, image_file, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.ImageFile,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	utils.LogDBQuery(query, []interface{}{user.Username, user.Email, constants.LogRedactedValue}, time.Since(start), err)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constants.PGCodeUniqueViolation {
			return duplicateUserError(pqErr, user)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// duplicateUserError builds a duplicate error naming the colliding field
// based on the violated constraint.
func duplicateUserError(pqErr *pq.Error, user *models.User) error {
	switch pqErr.Constraint {
	case "idx_username":
		return utils.NewDuplicateError("User", constants.ColumnUsername, user.Username)
	case "idx_email":
		return utils.NewDuplicateError("User", constants.ColumnEmail, user.Email)
	default:
		return utils.ParseError(pqErr)
	}
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
        SELECT id, username, email, password_hash, image_file, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	return r.getOne(ctx, query, id, "ID", id)
}

// GetByUsername retrieves a user by exact username match. Lookups are case
// sensitive to mirror the uniqueness rule on the column.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
        SELECT id, username, email, password_hash, image_file, created_at, updated_at
        FROM users
        WHERE username = $1
    `
	return r.getOne(ctx, query, username, "username", username)
}

// GetByEmail retrieves a user by exact email match.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT id, username, email, password_hash, image_file, created_at, updated_at
        FROM users
        WHERE email = $1
    `
	return r.getOne(ctx, query, email, "email", email)
}

// getOne runs a single-row user query and maps sql.ErrNoRows to not found.
func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}, idField string, idValue interface{}) (*models.User, error) {
	user := &models.User{}

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ImageFile,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{arg}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", idValue)
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", idField, err)
	}

	return user, nil
}

// Update updates a user's username and email.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
        UPDATE users
        SET username = $1, email = $2, updated_at = $3
        WHERE id = $4
    `

	user.UpdatedAt = time.Now()

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.UpdatedAt, user.ID)
	utils.LogDBQuery(query, []interface{}{user.Username, user.Email, user.UpdatedAt, user.ID}, time.Since(start), err)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constants.PGCodeUniqueViolation {
			return duplicateUserError(pqErr, user)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return checkRowsAffected(result, "User", user.ID)
}

// UpdateImage sets the profile image filename for a user.
func (r *userRepository) UpdateImage(ctx context.Context, id int64, imageFile string) error {
	query := `
        UPDATE users
        SET image_file = $1, updated_at = $2
        WHERE id = $3
    `

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, imageFile, time.Now(), id)
	utils.LogDBQuery(query, []interface{}{imageFile, id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}

	return checkRowsAffected(result, "User", id)
}

// ChangePassword replaces the stored password hash for a user.
func (r *userRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE id = $3
    `

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	utils.LogDBQuery(query, []interface{}{constants.LogRedactedValue, id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	return checkRowsAffected(result, "User", id)
}

// Delete removes a user account. Posts and sessions cascade through the
// foreign key constraints.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, id)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return checkRowsAffected(result, "User", id)
}

// ExistsByUsername reports whether a user with the exact username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	return r.exists(ctx, query, username)
}

// ExistsByEmail reports whether a user with the exact email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	return r.exists(ctx, query, email)
}

func (r *userRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var exists bool

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists)
	utils.LogDBQuery(query, []interface{}{arg}, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}

	return exists, nil
}

// checkRowsAffected converts a zero-row update or delete into a not found
// error for the given resource.
func checkRowsAffected(result sql.Result, resourceType string, id interface{}) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return utils.NewNotFoundError(resourceType, id)
	}
	return nil
}
