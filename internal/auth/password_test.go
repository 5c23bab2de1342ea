package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/niiakoadjei/BlogApp/internal/utils"
)

func testPasswordConfig() *PasswordConfig {
	return &PasswordConfig{Cost: bcrypt.MinCost}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}
	if strings.Contains(hash, "correct horse") {
		t.Error("hash must not contain the plaintext password")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same password", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h2, err := HashPassword("same password", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if err := CheckPassword("secret-password", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	err = CheckPassword("wrong-password", hash)
	if err == nil {
		t.Fatal("expected mismatched password to fail")
	}
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials error, got %v", err)
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	err := CheckPassword("anything", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, utils.ErrInvalidCredentials) {
		t.Error("malformed hash should not be reported as invalid credentials")
	}
}

func TestHashPasswordInvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("password123", &PasswordConfig{Cost: 99})
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if err := CheckPassword("password123", hash); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}
}
