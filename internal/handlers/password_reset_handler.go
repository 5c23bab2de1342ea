package handlers

import (
	"net/http"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/service"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// PasswordResetHandler handles the public password reset endpoints.
type PasswordResetHandler struct {
	authService *service.AuthService
}

// NewPasswordResetHandler creates a password reset handler.
func NewPasswordResetHandler(authService *service.AuthService) *PasswordResetHandler {
	return &PasswordResetHandler{authService: authService}
}

// ForgotPassword handles POST /api/auth/forgot-password. The response is the
// same whether or not the email belongs to an account.
func (h *PasswordResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "If that email is registered, a reset link has been sent",
	})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *PasswordResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{
		"message": "Password has been reset",
	})
}
