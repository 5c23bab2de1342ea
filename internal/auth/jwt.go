package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/niiakoadjei/BlogApp/internal/config"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// CustomClaims extends standard JWT claims with application-specific fields.
type CustomClaims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and validation. All token kinds share
// the signing secret; the token type claim keeps them apart.
type JWTService struct {
	config *config.JWTSettings
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTSettings) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken generates a short-lived access token for a user.
func (s *JWTService) GenerateAccessToken(userID int64, username, email string) (string, string, error) {
	return s.generateToken(userID, username, email, constants.TokenTypeAccess, s.config.Expiry)
}

// GenerateRefreshToken generates a refresh token. The lifetime is extended
// when the user asked to stay signed in.
func (s *JWTService) GenerateRefreshToken(userID int64, username, email string, remember bool) (string, string, error) {
	expiry := s.config.RefreshExpiry
	if remember {
		expiry = s.config.RememberExpiry
	}
	return s.generateToken(userID, username, email, constants.TokenTypeRefresh, expiry)
}

// RefreshExpiry returns the refresh session lifetime for the remember flag.
func (s *JWTService) RefreshExpiry(remember bool) time.Duration {
	if remember {
		return s.config.RememberExpiry
	}
	return s.config.RefreshExpiry
}

// generateToken creates a signed token with the given type and expiry and
// returns the token string together with its unique ID.
func (s *JWTService) generateToken(userID int64, username, email, tokenType string, expiry time.Duration) (string, string, error) {
	jwtID := uuid.New().String()
	now := time.Now()

	claims := CustomClaims{
		UserID:    userID,
		Username:  username,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jwtID,
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, jwtID, nil
}

// ValidateToken validates a token of the expected type and returns its
// claims. A bad signature takes precedence over expiry so that tampered
// tokens are always reported as invalid.
func (s *JWTService) ValidateToken(tokenString, expectedType string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, utils.NewInvalidTokenError()
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, utils.NewExpiredTokenError()
		default:
			return nil, utils.NewInvalidTokenError()
		}
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	if claims.TokenType != expectedType {
		return nil, utils.NewInvalidTokenError()
	}

	if s.config.Issuer != "" && claims.Issuer != s.config.Issuer {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}
