package handlers

import (
	"net/http"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/service"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetCurrentUser handles GET /api/users/me.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user.Sanitize())
}

// UpdateUser handles PUT /api/users/me.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var update models.UserUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user.Sanitize())
}

// ChangePassword handles PUT /api/users/me/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var change models.PasswordChange
	if err := utils.DecodeAndValidate(r, &change); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.userService.ChangePassword(r.Context(), userID, &change); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{"message": "Password changed"})
}

// UploadPicture handles POST /api/users/me/picture with a multipart body.
func (h *UserHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxPictureUploadSize)
	if err := r.ParseMultipartForm(constants.MaxPictureUploadSize); err != nil {
		utils.BadRequest(w, "Upload must be multipart form data no larger than 5MB", nil)
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		utils.BadRequest(w, "Missing 'picture' form field", nil)
		return
	}
	defer file.Close()

	user, err := h.userService.UpdateProfilePicture(r.Context(), userID, file, header.Filename)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user.Sanitize())
}
