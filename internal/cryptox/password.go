// Package cryptox wraps the password hashing used for stored verifiers.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Compare when the secret does not match.
var ErrMismatch = errors.New("secret does not match verifier")

// Hasher turns secrets into self-describing verifiers and checks them.
type Hasher interface {
	Hash(secret []byte) (string, error)
	Compare(verifier string, secret []byte) error
}

// BcryptHasher produces bcrypt verifiers. The salt and cost are encoded in
// the output string, so nothing else needs to be stored.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher clamps cost into bcrypt's accepted range.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(secret []byte) (string, error) {
	out, err := bcrypt.GenerateFromPassword(secret, h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(out), nil
}

// Compare returns nil on match and ErrMismatch otherwise. A malformed
// verifier also yields ErrMismatch, wrapped with the bcrypt reason.
func (h BcryptHasher) Compare(verifier string, secret []byte) error {
	err := bcrypt.CompareHashAndPassword([]byte(verifier), secret)
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("%w: %w", ErrMismatch, err)
}
