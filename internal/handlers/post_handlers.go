package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/service"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a post handler.
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// postIDParam extracts and parses the postID URL parameter.
func postIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewBadRequestError("Invalid post ID")
	}
	return id, nil
}

// ListPosts handles GET /api/posts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := utils.GetPaginationParams(r)

	posts, total, err := h.postService.ListPosts(r.Context(), params)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, posts, params.Page, params.PageSize, total)
}

// ListUserPosts handles GET /api/users/{username}/posts.
func (h *PostHandler) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	params := utils.GetPaginationParams(r)

	posts, total, err := h.postService.ListUserPosts(r.Context(), username, params)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, constants.StatusOK, posts, params.Page, params.PageSize, total)
}

// GetPost handles GET /api/posts/{postID}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, post)
}

// CreatePost handles POST /api/posts.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var create models.PostCreate
	if err := utils.DecodeAndValidate(r, &create); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	post, err := h.postService.CreatePost(r.Context(), userID, &create)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, post)
}

// UpdatePost handles PUT /api/posts/{postID}.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	id, err := postIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	var update models.PostUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, userID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/{postID}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	id, err := postIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.postService.DeletePost(r.Context(), id, userID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.NoContent(w)
}
