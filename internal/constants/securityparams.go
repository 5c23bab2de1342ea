// Package constants provides shared constant values used throughout the application.
//
// The securityparams.go file defines password hashing and credential
// validation parameters. Changes to these values affect both security and
// login latency.
package constants

import "golang.org/x/crypto/bcrypt"

// Password hashing parameters for bcrypt.
const (
	// DefaultBcryptCost is the bcrypt cost factor used in production.
	DefaultBcryptCost = 12

	// DevBcryptCost is a reduced cost factor for development and tests.
	DevBcryptCost = bcrypt.MinCost
)

// Credential length limits enforced during validation.
const (
	// MinUsernameLength is the minimum accepted username length.
	MinUsernameLength = 3

	// MaxUsernameLength is the maximum accepted username length.
	MaxUsernameLength = 50

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)
