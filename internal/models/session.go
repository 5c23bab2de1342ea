package models

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks an active refresh token so that logout and password changes
// can invalidate it server side.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	JWTID     string    `json:"jwt_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession creates a session for the given refresh token ID.
func NewSession(userID int64, jwtID string, expiresAt time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		JWTID:     jwtID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

// IsExpired reports whether the session has passed its expiry time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
