// Package recipes persists the recipe collection. Recipes are addressed by
// their position in the file; additions append, edits and deletions rewrite
// the whole file.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/models"
)

type Repository interface {
	EnsureInitialized(ctx context.Context) error
	List(ctx context.Context) ([]models.Recipe, error)
	Add(ctx context.Context, recipe models.Recipe) error
	ReplaceAll(ctx context.Context, recipes []models.Recipe) error
}
