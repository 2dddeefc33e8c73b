package utils

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used for all password hashing.
// Kept moderate so that login latency stays within interactive bounds.
const PasswordHashCost = 8

// HashPassword computes a salted bcrypt hash of the given plaintext password.
//
// bcrypt embeds a fresh random salt into every hash, so hashing the same
// plaintext twice yields two different stored values. This is the single
// write-boundary hashing function: every path that persists a password
// (registration, seed import of plaintext fixtures) must go through it.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
// Returns nil when they match.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// LooksLikeBcryptHash reports whether value already carries a bcrypt prefix.
//
// It exists solely for the seed-import path, which accepts pre-hashed
// passwords in fixture files. The general registration path must never call
// it: client input is always treated as plaintext and hashed.
func LooksLikeBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
