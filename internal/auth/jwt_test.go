package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/niiakoadjei/BlogApp/internal/config"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

func testJWTConfig() *config.JWTSettings {
	return &config.JWTSettings{
		Secret:         "test-secret-key-for-signing",
		Expiry:         15 * time.Minute,
		RefreshExpiry:  7 * 24 * time.Hour,
		RememberExpiry: 30 * 24 * time.Hour,
		ResetExpiry:    30 * time.Minute,
		Issuer:         "blogapp-test",
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	token, jwtID, err := service.GenerateAccessToken(42, "gopher", "gopher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if jwtID == "" {
		t.Error("expected a non-empty token ID")
	}

	claims, err := service.ValidateToken(token, constants.TokenTypeAccess)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", claims.UserID)
	}
	if claims.Username != "gopher" {
		t.Errorf("expected username gopher, got %q", claims.Username)
	}
	if claims.TokenType != constants.TokenTypeAccess {
		t.Errorf("expected access token type, got %q", claims.TokenType)
	}
}

func TestValidateTokenWrongType(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	token, _, err := service.GenerateRefreshToken(42, "gopher", "gopher@example.com", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	_, err = service.ValidateToken(token, constants.TokenTypeAccess)
	if err == nil {
		t.Fatal("expected refresh token to fail access validation")
	}
	if !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiry = -time.Minute
	service := NewJWTService(cfg)

	token, _, err := service.GenerateAccessToken(42, "gopher", "gopher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	_, err = service.ValidateToken(token, constants.TokenTypeAccess)
	if err == nil {
		t.Fatal("expected expired token to fail validation")
	}
	if !errors.Is(err, utils.ErrExpiredToken) {
		t.Errorf("expected expired token error, got %v", err)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	token, _, err := service.GenerateAccessToken(42, "gopher", "gopher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	// Corrupt the signature segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = service.ValidateToken(tampered, constants.TokenTypeAccess)
	if err == nil {
		t.Fatal("expected tampered token to fail validation")
	}
	if !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	token, _, err := service.GenerateAccessToken(42, "gopher", "gopher@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	other := testJWTConfig()
	other.Secret = "a-completely-different-secret"

	_, err = NewJWTService(other).ValidateToken(token, constants.TokenTypeAccess)
	if err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
	if !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	_, err := service.ValidateToken("not.a.token", constants.TokenTypeAccess)
	if err == nil {
		t.Fatal("expected malformed token to fail validation")
	}
	if !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}

func TestRefreshExpiryRememberFlag(t *testing.T) {
	cfg := testJWTConfig()
	service := NewJWTService(cfg)

	if got := service.RefreshExpiry(false); got != cfg.RefreshExpiry {
		t.Errorf("expected standard refresh expiry, got %v", got)
	}
	if got := service.RefreshExpiry(true); got != cfg.RememberExpiry {
		t.Errorf("expected extended remember expiry, got %v", got)
	}
}
