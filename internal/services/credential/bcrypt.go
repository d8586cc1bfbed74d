// Package credential compares caller supplied secrets against stored hashes.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier reports whether plain matches the stored hash without revealing it.
type Verifier interface {
	Verify(plain, stored string) bool
}

type BcryptVerifier struct{}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Verify never matches an empty stored hash (card not activated yet).
func (BcryptVerifier) Verify(plain, stored string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// Hash produces the stored form of a password or security code.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}
