// Package handlers contains the HTTP handlers for the API. Handlers decode
// and validate requests, call the service layer, and write standardized
// response envelopes.
package handlers

import (
	"net/http"
	"time"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/service"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// AuthHandler handles signup, login, token refresh, and logout.
type AuthHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

// NewAuthHandler creates an auth handler. Secure cookies are used outside of
// development so refresh tokens only travel over HTTPS.
func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// Register handles POST /api/auth/signup.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, user.Sanitize())
}

// Login handles POST /api/auth/login. The access token is returned in the
// body; the refresh token is set as an HTTP-only cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, pair, err := h.authService.AuthenticateUser(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken, creds.Remember)

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"user":         user.Sanitize(),
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
	})
}

// RefreshToken handles POST /api/auth/refresh using the refresh cookie.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(constants.RefreshTokenCookie)
	if err != nil {
		utils.Unauthorized(w, "Refresh token missing")
		return
	}

	pair, err := h.authService.RefreshTokens(r.Context(), cookie.Value)
	if err != nil {
		h.clearRefreshCookie(w)
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken, false)

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"access_token": pair.AccessToken,
		"expires_in":   pair.ExpiresIn,
	})
}

// Logout handles POST /api/auth/logout. Always succeeds and clears the
// refresh cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(constants.RefreshTokenCookie); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			utils.ErrorFromAppError(w, utils.ParseError(err))
			return
		}
	}

	h.clearRefreshCookie(w)
	utils.JSON(w, constants.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string, remember bool) {
	cookie := &http.Cookie{
		Name:     constants.RefreshTokenCookie,
		Value:    token,
		Path:     constants.APIBasePath + "/auth",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
	if remember {
		cookie.Expires = time.Now().Add(constants.DefaultJWTRememberExpiry)
	}
	http.SetCookie(w, cookie)
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.RefreshTokenCookie,
		Value:    "",
		Path:     constants.APIBasePath + "/auth",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
