// Package meals persists the weekly meal plan as a "day,meal" file that is
// rewritten in full on every save.
package meals

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/models"
)

type Repository interface {
	EnsureInitialized(ctx context.Context) error
	Load(ctx context.Context) (models.MealPlan, error)
	Save(ctx context.Context, plan models.MealPlan) error
}
