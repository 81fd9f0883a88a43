// Package services contains the application services of the meal planner.
// This file defines the authenticator: registration, login and logout over
// the credential store.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/cryptox"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/users"
	"golang.org/x/text/unicode/norm"
)

// maxSecretLen is the longest secret bcrypt accepts.
const maxSecretLen = 72

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: store a new account; never logs anybody in.
//   - Login: verify credentials and return the new session.
//   - Logout: end a session; a nil session is a no-op.
//
// Declined outcomes are common.ErrDuplicateAccount and
// common.ErrInvalidCredentials. Bad input is common.ErrValidation. Storage
// problems match common.ErrStorage and are never reported as a failed login.
type AuthService interface {
	Register(ctx context.Context, identifier string, secret []byte) error
	Login(ctx context.Context, identifier string, secret []byte) (*models.Session, error)
	Logout(ctx context.Context, session *models.Session)
}

type authService struct {
	users  users.Repository
	hasher cryptox.Hasher
	log    logging.Logger

	dummyOnce     sync.Once
	dummyVerifier string
}

// NewAuthService constructs an AuthService over the given credential store.
func NewAuthService(repo users.Repository, hasher cryptox.Hasher, log logging.Logger) AuthService {
	return &authService{users: repo, hasher: hasher, log: log}
}

// Register validates the input, rejects an identifier that is already taken,
// and appends a new record holding a fresh salted verifier of secret.
func (a *authService) Register(ctx context.Context, identifier string, secret []byte) error {
	identifier, secret, err := normalizeCredentials(identifier, secret)
	if err != nil {
		return err
	}
	if common.HasSeparator(identifier) {
		return common.ValidationError("identifier must not contain commas or line breaks")
	}

	_, err = a.users.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		a.log.Info(ctx, "registration declined: identifier taken", "identifier", identifier)
		return common.ErrDuplicateAccount
	case !errors.Is(err, common.ErrNotFound):
		a.log.Error(ctx, "registration failed: lookup", "identifier", identifier, "error", err)
		return fmt.Errorf("register: %w", err)
	}

	verifier, err := a.hasher.Hash(secret)
	if err != nil {
		a.log.Error(ctx, "registration failed: hashing", "identifier", identifier, "error", err)
		return fmt.Errorf("register: %w", err)
	}

	if err := a.users.Insert(ctx, models.Account{Identifier: identifier, Verifier: verifier}); err != nil {
		a.log.Error(ctx, "registration failed: insert", "identifier", identifier, "error", err)
		return fmt.Errorf("register: %w", err)
	}

	a.log.Info(ctx, "user registered", "identifier", identifier)
	return nil
}

// Login returns a session for identifier when secret matches the stored
// verifier. An unknown identifier and a wrong secret both yield
// common.ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, identifier string, secret []byte) (*models.Session, error) {
	identifier, secret, err := normalizeCredentials(identifier, secret)
	if err != nil {
		return nil, err
	}

	acc, err := a.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// burn the same amount of time as a real comparison
			_ = a.hasher.Compare(a.dummy(), secret)
			a.log.Warn(ctx, "failed login attempt", "identifier", identifier)
			return nil, common.ErrInvalidCredentials
		}
		a.log.Error(ctx, "login failed: lookup", "identifier", identifier, "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := a.hasher.Compare(acc.Verifier, secret); err != nil {
		a.log.Warn(ctx, "failed login attempt", "identifier", identifier)
		return nil, common.ErrInvalidCredentials
	}

	s := models.NewSession(identifier)
	a.log.Info(ctx, "user logged in", "identifier", identifier, "session_id", s.ID.String())
	return s, nil
}

func (a *authService) Logout(ctx context.Context, session *models.Session) {
	if session == nil {
		return
	}
	a.log.Info(ctx, "user logged out", "identifier", session.Identifier, "session_id", session.ID.String())
}

func (a *authService) dummy() string {
	a.dummyOnce.Do(func() {
		v, err := a.hasher.Hash([]byte("dummy-secret"))
		if err == nil {
			a.dummyVerifier = v
		}
	})
	return a.dummyVerifier
}

func normalizeCredentials(identifier string, secret []byte) (string, []byte, error) {
	identifier = norm.NFC.String(strings.TrimSpace(identifier))
	secret = bytes.TrimSpace(secret)

	if identifier == "" || len(secret) == 0 {
		return "", nil, common.ValidationError("identifier and secret must not be empty")
	}
	if len(secret) > maxSecretLen {
		return "", nil, common.ValidationError(fmt.Sprintf("secret must be at most %d bytes", maxSecretLen))
	}
	return identifier, secret, nil
}
