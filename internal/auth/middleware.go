package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// AuthProvider abstracts token validation so middleware does not depend on a
// concrete token implementation.
type AuthProvider interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*CustomClaims, error)
}

// JWTAuthProvider implements AuthProvider using the JWT service.
type JWTAuthProvider struct {
	jwtService *JWTService
}

// NewJWTAuthProvider creates an auth provider backed by the given service.
func NewJWTAuthProvider(jwtService *JWTService) *JWTAuthProvider {
	return &JWTAuthProvider{jwtService: jwtService}
}

// ValidateAccessToken validates an access token string.
func (p *JWTAuthProvider) ValidateAccessToken(tokenString string) (*CustomClaims, error) {
	return p.jwtService.ValidateToken(tokenString, constants.TokenTypeAccess)
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get(constants.HeaderAuthorization)
	if header == "" {
		return "", utils.NewUnauthorizedError("")
	}

	if !strings.HasPrefix(header, constants.BearerTokenPrefix) {
		return "", utils.NewUnauthorizedError("Authorization header must use the Bearer scheme")
	}

	token := strings.TrimPrefix(header, constants.BearerTokenPrefix)
	if token == "" {
		return "", utils.NewUnauthorizedError("")
	}

	return token, nil
}

// RequireAuth returns middleware that rejects requests without a valid
// access token and stores the caller's identity in the request context.
func RequireAuth(provider AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractToken(r)
			if err != nil {
				utils.ErrorFromAppError(w, utils.ParseError(err))
				return
			}

			claims, err := provider.ValidateAccessToken(token)
			if err != nil {
				utils.ErrorFromAppError(w, utils.ParseError(err))
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, constants.UserIDContextKey, claims.UserID)
			ctx = context.WithValue(ctx, constants.UsernameContextKey, claims.Username)
			ctx = context.WithValue(ctx, constants.EmailContextKey, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that attaches identity when a valid token
// is present but lets anonymous requests through.
func OptionalAuth(provider AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractToken(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := provider.ValidateAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, constants.UserIDContextKey, claims.UserID)
			ctx = context.WithValue(ctx, constants.UsernameContextKey, claims.Username)
			ctx = context.WithValue(ctx, constants.EmailContextKey, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(constants.UserIDContextKey).(int64)
	return userID, ok
}

// GetUsername extracts the authenticated username from the request context.
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(constants.UsernameContextKey).(string)
	return username, ok
}

// GetEmail extracts the authenticated email from the request context.
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(constants.EmailContextKey).(string)
	return email, ok
}
