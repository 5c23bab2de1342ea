package auth

import (
	"github.com/niiakoadjei/BlogApp/internal/config"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
)

// ResetTokenService issues and verifies password reset tokens. Tokens are
// stateless signed claims with a short validity window; nothing is stored
// server side, so a token remains usable until it expires.
type ResetTokenService struct {
	jwtService *JWTService
	expiry     config.JWTSettings
}

// NewResetTokenService creates a reset token service sharing the signing
// configuration of the JWT service.
func NewResetTokenService(cfg *config.JWTSettings) *ResetTokenService {
	return &ResetTokenService{
		jwtService: NewJWTService(cfg),
		expiry:     *cfg,
	}
}

// Issue generates a reset token for the given user.
func (s *ResetTokenService) Issue(user *models.User) (string, error) {
	token, _, err := s.jwtService.generateToken(
		user.ID, user.Username, user.Email,
		constants.TokenTypePasswordReset, s.expiry.ResetExpiry,
	)
	return token, err
}

// Verify checks a reset token and returns the user ID it was issued for.
// Expired tokens and tokens of the wrong type or with a bad signature are
// rejected with the appropriate error.
func (s *ResetTokenService) Verify(tokenString string) (int64, error) {
	claims, err := s.jwtService.ValidateToken(tokenString, constants.TokenTypePasswordReset)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
