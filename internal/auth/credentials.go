// Package auth holds password schemes and the optional identification token.
package auth

import (
	"crypto/subtle"
	"fmt"

	"fintrack/internal/utils"
)

const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// CredentialChecker seals passwords for storage and compares candidates
// against what was stored.
type CredentialChecker interface {
	Seal(password string) (string, error)
	Match(stored, candidate string) bool
}

// Plaintext stores passwords verbatim.
type Plaintext struct{}

func (Plaintext) Seal(password string) (string, error) { return password, nil }

func (Plaintext) Match(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

type Bcrypt struct{}

func (Bcrypt) Seal(password string) (string, error) { return utils.HashPassword(password) }

func (Bcrypt) Match(stored, candidate string) bool { return utils.CheckPasswordHash(candidate, stored) }

// NewCredentialChecker returns the checker for a configured scheme name.
func NewCredentialChecker(scheme string) (CredentialChecker, error) {
	switch scheme {
	case "", SchemePlaintext:
		return Plaintext{}, nil
	case SchemeBcrypt:
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}
