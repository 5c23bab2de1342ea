package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
)

func TestParseErrorPassesThroughAppError(t *testing.T) {
	original := NewNotFoundError("User", 42)
	parsed := ParseError(original)

	if parsed != original {
		t.Error("expected the same AppError back")
	}
}

func TestParseErrorSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseError(tt.err)
			if parsed.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, parsed.StatusCode)
			}
		})
	}
}

func TestParseErrorUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Constraint: "idx_email"}

	parsed := ParseError(pqErr)
	if parsed.StatusCode != http.StatusConflict {
		t.Errorf("expected status 409, got %d", parsed.StatusCode)
	}
	if parsed.Field != "email" {
		t.Errorf("expected field email from constraint name, got %q", parsed.Field)
	}
	if !errors.Is(parsed, ErrDuplicate) {
		t.Error("expected error to wrap the duplicate sentinel")
	}
}

func TestParseErrorUnknownBecomesInternal(t *testing.T) {
	parsed := ParseError(errors.New("mystery failure"))
	if parsed.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", parsed.StatusCode)
	}
	if parsed.DevInfo == "" {
		t.Error("expected the original error to be preserved in DevInfo")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewDuplicateError("User", "username", "gopher")
	if !errors.Is(err, ErrDuplicate) {
		t.Error("expected errors.Is to see the duplicate sentinel")
	}
}
