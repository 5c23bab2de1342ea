// Package auth provides password hashing, token issuance and verification,
// and the request authentication middleware glue.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// PasswordConfig contains settings for password hashing.
type PasswordConfig struct {
	Cost int
}

// DefaultPasswordConfig returns the production hashing configuration.
func DefaultPasswordConfig() *PasswordConfig {
	return &PasswordConfig{Cost: constants.DefaultBcryptCost}
}

// HashPassword hashes a password using bcrypt with the configured cost.
func HashPassword(password string, config *PasswordConfig) (string, error) {
	if config == nil {
		config = DefaultPasswordConfig()
	}

	cost := config.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constants.DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword verifies a password against a stored hash. A mismatch
// returns an invalid credentials error; any other failure is internal.
func CheckPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return utils.NewInvalidCredentialsError()
	}

	return utils.NewInternalServerError(fmt.Errorf("failed to verify password: %w", err))
}
