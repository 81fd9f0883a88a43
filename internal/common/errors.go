// Package common defines shared constants and sentinel errors used across
// the storage, service and CLI layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage error")

	// Validation errors: bad input, rejected before any storage access.
	ErrValidation = errors.New("validation error")

	// Declined operations.
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
