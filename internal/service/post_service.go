package service

import (
	"context"
	"time"

	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/repository"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// PostService handles post reads, writes, and the ownership rule: only the
// author of a post may modify or delete it.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a post service from its dependencies.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a post authored by the given user.
func (s *PostService) CreatePost(ctx context.Context, userID int64, create *models.PostCreate) (*models.Post, error) {
	post := &models.Post{
		Title:     create.Title,
		Content:   create.Content,
		CreatedAt: time.Now(),
		UserID:    userID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetPost returns a post by ID. Posts are publicly readable.
func (s *PostService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost replaces a post's title and content after checking ownership.
// A missing post is reported as not found before any ownership decision.
func (s *PostService) UpdatePost(ctx context.Context, id, requesterID int64, update *models.PostUpdate) (*models.Post, error) {
	post, err := s.authorizeMutation(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	post.Title = update.Title
	post.Content = update.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes a post after checking ownership.
func (s *PostService) DeletePost(ctx context.Context, id, requesterID int64) error {
	if _, err := s.authorizeMutation(ctx, id, requesterID); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, id)
}

// authorizeMutation loads a post and verifies the requester is its author.
func (s *PostService) authorizeMutation(ctx context.Context, id, requesterID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.UserID != requesterID {
		return nil, utils.NewForbiddenError("You can only modify your own posts")
	}

	return post, nil
}

// ListPosts returns a page of all posts, newest first, with the total count.
func (s *PostService) ListPosts(ctx context.Context, params utils.PaginationParams) ([]*models.PostWithAuthor, int, error) {
	posts, err := s.postRepo.List(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListUserPosts returns a page of one author's posts, newest first. The
// author is resolved by exact username.
func (s *PostService) ListUserPosts(ctx context.Context, username string, params utils.PaginationParams) ([]*models.PostWithAuthor, int, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, 0, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, user.ID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}
