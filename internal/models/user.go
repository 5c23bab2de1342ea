// Package models defines the domain types and request/response shapes for
// the API. Request structs carry validation tags consumed by the shared
// decoder; domain structs mirror the database rows.
package models

import (
	"time"

	"github.com/niiakoadjei/BlogApp/internal/constants"
)

// User represents a registered account. PasswordHash never leaves the server;
// the json tag omits it from every response.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ImageFile    string    `json:"image_file"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a user with the default profile image and current timestamps.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		ImageFile:    constants.DefaultProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Sanitize returns a copy of the user safe for API responses.
func (u *User) Sanitize() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// UserRegistration is the request body for account creation.
type UserRegistration struct {
	Username        string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// UserCredentials is the request body for login.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// UserUpdate is the request body for profile updates. Both fields are
// optional; empty values leave the current value unchanged.
type UserUpdate struct {
	Username string `json:"username" validate:"omitempty,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
}

// PasswordChange is the request body for changing the password of an
// authenticated user.
type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}
