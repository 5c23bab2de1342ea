package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

type postFixture struct {
	service  *PostService
	postRepo *mockPostRepo
	userRepo *mockUserRepo
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()

	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	return &postFixture{
		service:  NewPostService(postRepo, userRepo),
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func TestCreatePost(t *testing.T) {
	f := newPostFixture(t)

	post, err := f.service.CreatePost(context.Background(), 1, &models.PostCreate{
		Title:   "Hello",
		Content: "World",
	})
	require.NoError(t, err)

	assert.NotZero(t, post.ID)
	assert.Equal(t, int64(1), post.UserID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestUpdatePostByOwner(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.service.CreatePost(ctx, 1, &models.PostCreate{Title: "Original", Content: "Body"})
	require.NoError(t, err)
	originalCreatedAt := post.CreatedAt

	updated, err := f.service.UpdatePost(ctx, post.ID, 1, &models.PostUpdate{
		Title:   "Edited",
		Content: "New body",
	})
	require.NoError(t, err)

	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, int64(1), updated.UserID)
	assert.Equal(t, originalCreatedAt, updated.CreatedAt)
}

func TestUpdatePostByStranger(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.service.CreatePost(ctx, 1, &models.PostCreate{Title: "Mine", Content: "Body"})
	require.NoError(t, err)

	_, err = f.service.UpdatePost(ctx, post.ID, 2, &models.PostUpdate{Title: "Stolen", Content: "x"})
	require.Error(t, err)
	assert.True(t, utils.IsForbiddenError(err))

	// The post is untouched
	stored, err := f.service.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", stored.Title)
}

func TestUpdatePostMissing(t *testing.T) {
	f := newPostFixture(t)

	// A missing post is not found, never forbidden
	_, err := f.service.UpdatePost(context.Background(), 999, 1, &models.PostUpdate{Title: "x", Content: "y"})
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestDeletePostByOwner(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.service.CreatePost(ctx, 1, &models.PostCreate{Title: "Doomed", Content: "Body"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeletePost(ctx, post.ID, 1))

	_, err = f.service.GetPost(ctx, post.ID)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestDeletePostByStranger(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.service.CreatePost(ctx, 1, &models.PostCreate{Title: "Mine", Content: "Body"})
	require.NoError(t, err)

	err = f.service.DeletePost(ctx, post.ID, 2)
	require.Error(t, err)
	assert.True(t, utils.IsForbiddenError(err))
}

func TestListPostsPaginated(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		post := &models.Post{
			Title:     "Post",
			Content:   "Body",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
			UserID:    1,
		}
		require.NoError(t, f.postRepo.Create(ctx, post))
	}

	posts, total, err := f.service.ListPosts(ctx, utils.PaginationParams{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, posts, 3)

	// Newest first
	assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
	assert.True(t, posts[1].CreatedAt.After(posts[2].CreatedAt))

	secondPage, _, err := f.service.ListPosts(ctx, utils.PaginationParams{Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, secondPage, 2)
}

func TestListUserPosts(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	author := models.NewUser("gopher", "gopher@example.com", "hash")
	require.NoError(t, f.userRepo.Create(ctx, author))
	other := models.NewUser("ferris", "ferris@example.com", "hash")
	require.NoError(t, f.userRepo.Create(ctx, other))

	for i, userID := range []int64{author.ID, author.ID, other.ID} {
		post := &models.Post{
			Title:     "Post",
			Content:   "Body",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
			UserID:    userID,
		}
		require.NoError(t, f.postRepo.Create(ctx, post))
	}

	posts, total, err := f.service.ListUserPosts(ctx, "gopher", utils.PaginationParams{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, posts, 2)
}

func TestListUserPostsUnknownUser(t *testing.T) {
	f := newPostFixture(t)

	_, _, err := f.service.ListUserPosts(context.Background(), "nobody", utils.PaginationParams{Page: 1, PageSize: 3})
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}
