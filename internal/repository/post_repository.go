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

// PostRepository defines the operations for managing blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*models.PostWithAuthor, error)
	Count(ctx context.Context) (int, error)
	ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]*models.PostWithAuthor, error)
	CountByAuthor(ctx context.Context, userID int64) (int, error)
}

// postRepository is the PostgreSQL implementation of PostRepository.
type postRepository struct {
	db *database.Pool
}

// NewPostRepository creates a post repository backed by the given pool.
func NewPostRepository(db *database.Pool) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (title, content, created_at, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		post.Title,
		post.Content,
		post.CreatedAt,
		post.UserID,
	).Scan(&post.ID)
	utils.LogDBQuery(query, []interface{}{post.Title, post.UserID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `
        SELECT id, title, content, created_at, user_id
        FROM posts
        WHERE id = $1
    `

	post := &models.Post{}

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UserID,
	)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Post", id)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// Update replaces a post's title and content. Authorship and creation time
// are never touched.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
        UPDATE posts
        SET title = $1, content = $2
        WHERE id = $3
    `

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.ID)
	utils.LogDBQuery(query, []interface{}{post.Title, post.ID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return checkRowsAffected(result, "Post", post.ID)
}

// Delete removes a post.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, id)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return checkRowsAffected(result, "Post", id)
}

const listColumns = `
        p.id, p.title, p.content, p.created_at, p.user_id,
        u.username, u.image_file
`

// List returns posts joined with their authors, newest first.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.PostWithAuthor, error) {
	query := `
        SELECT` + listColumns + `
        FROM posts p
        JOIN users u ON u.id = p.user_id
        ORDER BY p.created_at DESC
        LIMIT $1 OFFSET $2
    `

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	utils.LogDBQuery(query, []interface{}{limit, offset}, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPostsWithAuthor(rows)
}

// Count returns the total number of posts.
func (r *postRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM posts`
	return r.count(ctx, query)
}

// ListByAuthor returns a single author's posts, newest first.
func (r *postRepository) ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]*models.PostWithAuthor, error) {
	query := `
        SELECT` + listColumns + `
        FROM posts p
        JOIN users u ON u.id = p.user_id
        WHERE p.user_id = $1
        ORDER BY p.created_at DESC
        LIMIT $2 OFFSET $3
    `

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	utils.LogDBQuery(query, []interface{}{userID, limit, offset}, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer rows.Close()

	return scanPostsWithAuthor(rows)
}

// CountByAuthor returns the number of posts by a single author.
func (r *postRepository) CountByAuthor(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE user_id = $1`
	return r.count(ctx, query, userID)
}

func (r *postRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var count int

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	utils.LogDBQuery(query, args, time.Since(start), err)

	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

func scanPostsWithAuthor(rows *sql.Rows) ([]*models.PostWithAuthor, error) {
	posts := []*models.PostWithAuthor{}

	for rows.Next() {
		post := &models.PostWithAuthor{}
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&post.UserID,
			&post.AuthorUsername,
			&post.AuthorImageFile,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}
