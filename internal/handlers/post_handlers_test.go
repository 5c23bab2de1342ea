package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/repository"
	"github.com/niiakoadjei/BlogApp/internal/service"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// stubPostRepo implements repository.PostRepository over a fixed post map.
type stubPostRepo struct {
	posts map[int64]*models.Post
}

func (s *stubPostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = int64(len(s.posts) + 1)
	s.posts[post.ID] = post
	return nil
}

func (s *stubPostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, utils.NewNotFoundError("Post", id)
	}
	clone := *post
	return &clone, nil
}

func (s *stubPostRepo) Update(_ context.Context, post *models.Post) error {
	stored, ok := s.posts[post.ID]
	if !ok {
		return utils.NewNotFoundError("Post", post.ID)
	}
	stored.Title = post.Title
	stored.Content = post.Content
	return nil
}

func (s *stubPostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.posts[id]; !ok {
		return utils.NewNotFoundError("Post", id)
	}
	delete(s.posts, id)
	return nil
}

func (s *stubPostRepo) List(_ context.Context, limit, offset int) ([]*models.PostWithAuthor, error) {
	out := []*models.PostWithAuthor{}
	for _, post := range s.posts {
		out = append(out, &models.PostWithAuthor{Post: *post, AuthorUsername: "gopher"})
	}
	if offset >= len(out) {
		return []*models.PostWithAuthor{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (s *stubPostRepo) Count(_ context.Context) (int, error) {
	return len(s.posts), nil
}

func (s *stubPostRepo) ListByAuthor(_ context.Context, userID int64, limit, offset int) ([]*models.PostWithAuthor, error) {
	out := []*models.PostWithAuthor{}
	for _, post := range s.posts {
		if post.UserID == userID {
			out = append(out, &models.PostWithAuthor{Post: *post, AuthorUsername: "gopher"})
		}
	}
	return out, nil
}

func (s *stubPostRepo) CountByAuthor(_ context.Context, userID int64) (int, error) {
	count := 0
	for _, post := range s.posts {
		if post.UserID == userID {
			count++
		}
	}
	return count, nil
}

// stubUserRepo implements repository.UserRepository for the author lookups
// the post handlers need. The remaining methods are unreachable in these
// tests and return not found.
type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(context.Context, *models.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	return nil, utils.NewNotFoundError("User", id)
}
func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, utils.NewNotFoundError("User", username)
	}
	return user, nil
}
func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return nil, utils.NewNotFoundError("User", email)
}
func (s *stubUserRepo) Update(context.Context, *models.User) error             { return nil }
func (s *stubUserRepo) UpdateImage(context.Context, int64, string) error       { return nil }
func (s *stubUserRepo) ChangePassword(context.Context, int64, string) error    { return nil }
func (s *stubUserRepo) Delete(context.Context, int64) error                    { return nil }
func (s *stubUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (s *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }

var _ repository.PostRepository = (*stubPostRepo)(nil)
var _ repository.UserRepository = (*stubUserRepo)(nil)

func newPostRouter(posts map[int64]*models.Post) http.Handler {
	postService := service.NewPostService(
		&stubPostRepo{posts: posts},
		&stubUserRepo{users: map[string]*models.User{}},
	)
	handler := NewPostHandler(postService)

	r := chi.NewRouter()
	r.Get("/api/posts/{postID}", handler.GetPost)
	r.Get("/api/posts", handler.ListPosts)
	r.Put("/api/posts/{postID}", handler.UpdatePost)
	r.Delete("/api/posts/{postID}", handler.DeletePost)
	return r
}

func withUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), constants.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

func seedPosts() map[int64]*models.Post {
	return map[int64]*models.Post{
		1: {ID: 1, Title: "Mine", Content: "Body", CreatedAt: time.Now(), UserID: 10},
	}
}

func TestGetPostPublic(t *testing.T) {
	router := newPostRouter(seedPosts())

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestGetPostNotFound(t *testing.T) {
	router := newPostRouter(seedPosts())

	req := httptest.NewRequest(http.MethodGet, "/api/posts/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPostBadID(t *testing.T) {
	router := newPostRouter(seedPosts())

	req := httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePostForbiddenForStranger(t *testing.T) {
	router := newPostRouter(seedPosts())

	body := strings.NewReader(`{"title":"Stolen","content":"x"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/posts/1", body)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withUser(req, 20))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdatePostByOwner(t *testing.T) {
	router := newPostRouter(seedPosts())

	body := strings.NewReader(`{"title":"Edited","content":"New body"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/posts/1", body)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withUser(req, 10))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Edited", data["title"])
}

func TestDeletePostUnauthenticated(t *testing.T) {
	router := newPostRouter(seedPosts())

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeletePostByOwner(t *testing.T) {
	router := newPostRouter(seedPosts())

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withUser(req, 10))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListPostsEnvelope(t *testing.T) {
	router := newPostRouter(seedPosts())

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.TotalItems)
	assert.Equal(t, constants.DefaultPageSize, resp.Meta.PageSize)
}
