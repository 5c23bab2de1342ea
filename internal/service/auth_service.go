package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/repository"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// TokenPair carries a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService handles registration, login, token refresh, logout, and
// password resets.
type AuthService struct {
	userRepo       repository.UserRepository
	sessionRepo    repository.SessionRepository
	jwtService     *auth.JWTService
	resetTokens    *auth.ResetTokenService
	emailSender    EmailSender
	passwordConfig *auth.PasswordConfig
	accessExpiry   time.Duration
}

// NewAuthService creates an auth service from its dependencies.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtService *auth.JWTService,
	resetTokens *auth.ResetTokenService,
	emailSender EmailSender,
	passwordConfig *auth.PasswordConfig,
	accessExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		jwtService:     jwtService,
		resetTokens:    resetTokens,
		emailSender:    emailSender,
		passwordConfig: passwordConfig,
		accessExpiry:   accessExpiry,
	}
}

// RegisterUser creates a new account. Username and email must be unused;
// both checks run before the insert and the database constraints remain the
// final authority under concurrent registration.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, reg.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewDuplicateError("User", constants.ColumnUsername, reg.Username)
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewDuplicateError("User", constants.ColumnEmail, reg.Email)
	}

	hash, err := auth.HashPassword(reg.Password, s.passwordConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(reg.Username, reg.Email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuth("register", fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return user, nil
}

// AuthenticateUser verifies credentials and issues a token pair. An unknown
// email and a wrong password produce the same invalid credentials error.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login", "", "", false, "unknown email")
			return nil, nil, utils.NewInvalidCredentialsError()
		}
		return nil, nil, err
	}

	if err := auth.CheckPassword(creds.Password, user.PasswordHash); err != nil {
		utils.LogAuth("login", fmt.Sprintf("%d", user.ID), user.Username, false, "wrong password")
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user, creds.Remember)
	if err != nil {
		return nil, nil, err
	}

	utils.LogAuth("login", fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return user, pair, nil
}

// issueTokens generates an access and refresh token and records the refresh
// session.
func (s *AuthService) issueTokens(ctx context.Context, user *models.User, remember bool) (*TokenPair, error) {
	accessToken, _, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, jwtID, err := s.jwtService.GenerateRefreshToken(user.ID, user.Username, user.Email, remember)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := models.NewSession(user.ID, jwtID, time.Now().Add(s.jwtService.RefreshExpiry(remember)))
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpiry.Seconds()),
	}, nil
}

// RefreshTokens validates a refresh token against its session and rotates
// it, issuing a new token pair.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken, constants.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	valid, err := s.sessionRepo.IsValidSession(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, utils.NewInvalidTokenError()
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	// Rotate: the old session dies with the old token
	if err := s.sessionRepo.DeleteByJWTID(ctx, claims.ID); err != nil && !utils.IsNotFoundError(err) {
		return nil, err
	}

	return s.issueTokens(ctx, user, false)
}

// Logout invalidates the session behind a refresh token. An already invalid
// token is not an error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken, constants.TokenTypeRefresh)
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.DeleteByJWTID(ctx, claims.ID); err != nil && !utils.IsNotFoundError(err) {
		return err
	}

	utils.LogAuth("logout", fmt.Sprintf("%d", claims.UserID), claims.Username, true, "")

	return nil
}

// RequestPasswordReset issues a reset token for the account behind an email
// address and sends it by mail. Whether the account exists is never revealed
// to the caller; an unknown email succeeds silently.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			log.Info().Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := s.resetTokens.Issue(user)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := s.emailSender.SendPasswordReset(user.Email, user.Username, token); err != nil {
		return err
	}

	utils.LogAuth("password_reset_requested", fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return nil
}

// ResetPassword verifies a reset token and replaces the account password.
// All active sessions of the user are invalidated afterwards.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resetTokens.Verify(token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.passwordConfig)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if _, err := s.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return err
	}

	utils.LogAuth("password_reset", fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return nil
}

// CleanupExpiredSessions removes expired refresh sessions. Run periodically
// by the server's maintenance ticker.
func (s *AuthService) CleanupExpiredSessions(ctx context.Context) error {
	deleted, err := s.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("Expired sessions cleaned up")
	}

	return nil
}
