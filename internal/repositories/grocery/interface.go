// Package grocery persists the most recently generated grocery list.
package grocery

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/models"
)

type Repository interface {
	EnsureInitialized(ctx context.Context) error
	Load(ctx context.Context) (models.GroceryList, error)
	Save(ctx context.Context, list models.GroceryList) error
}
