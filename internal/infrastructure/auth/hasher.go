package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		// Return a generic error message regardless of the actual cause
		// This prevents timing attacks that could distinguish between:
		// - Invalid password (ErrMismatchedHashAndPassword)
		// - Malformed hash or other internal errors
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// IsHashed reports whether the stored credential is a bcrypt hash. Rows that
// predate hashing still hold the raw password and are migrated on first login.
func (h *BcryptPasswordHasher) IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// VerifyLegacy compares a legacy plaintext credential in constant time.
func (h *BcryptPasswordHasher) VerifyLegacy(password, stored string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
