package users

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/models"
)

// Repository describes the credential store operations.
type Repository interface {
	// EnsureInitialized creates the backing file with only the header row
	// when it does not exist yet.
	EnsureInitialized(ctx context.Context) error

	// FindByIdentifier returns the first record whose identifier matches
	// exactly, or common.ErrNotFound.
	FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error)

	// Insert appends one record. The caller has already checked uniqueness.
	Insert(ctx context.Context, account models.Account) error
}
