package helpers

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt reads at most 72 bytes of a password.
const bcryptMaxBytes = 72

// BcryptHasher hashes passwords with a fixed bcrypt cost.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher falls back to bcrypt.DefaultCost for an out-of-range cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash hashes the plain text password using bcrypt. Passwords longer than
// 72 bytes are cut at the last whole character that fits.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(bcryptInput(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares a bcrypt hash with a plain password. A malformed hash
// simply does not match.
func (h *BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(plain)) == nil
}

func bcryptInput(plain string) []byte {
	if len(plain) <= bcryptMaxBytes {
		return []byte(plain)
	}
	end := bcryptMaxBytes
	for end > 0 && !utf8.RuneStart(plain[end]) {
		end--
	}
	return []byte(plain[:end])
}
