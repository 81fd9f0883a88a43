// Package storage performs the one-time initialization of the data directory
// and hands out the repositories that live in it.
package storage

import (
	"context"
	"path/filepath"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/filex"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/grocery"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/meals"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/recipes"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/users"
)

type Repositories struct {
	Dir      string
	Users    users.Repository
	MealPlan meals.Repository
	Recipes  recipes.Repository
	Grocery  grocery.Repository
}

type initializer interface {
	EnsureInitialized(ctx context.Context) error
}

// Init ensures dataDir exists and that every backing file is present with
// its header. The first failure is logged and returned; nothing is retried.
func Init(ctx context.Context, dataDir string, log logging.Logger) (*Repositories, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		log.Error(ctx, "cannot create data directory", "dir", dataDir, "error", err)
		return nil, err
	}

	repos := &Repositories{
		Dir:      dir,
		Users:    users.NewCSVRepository(filepath.Join(dir, common.UsersFileName)),
		MealPlan: meals.NewCSVRepository(filepath.Join(dir, common.MealPlanFileName)),
		Recipes:  recipes.NewCSVRepository(filepath.Join(dir, common.RecipesFileName)),
		Grocery:  grocery.NewCSVRepository(filepath.Join(dir, common.GroceryListFileName)),
	}

	for _, r := range []initializer{repos.Users, repos.MealPlan, repos.Recipes, repos.Grocery} {
		if err := r.EnsureInitialized(ctx); err != nil {
			log.Error(ctx, "storage initialization failed", "dir", dir, "error", err)
			return nil, err
		}
	}

	log.Info(ctx, "storage initialized", "dir", dir)
	return repos, nil
}
