package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/recipes"
)

// RecipeService manages the personal recipe collection. Recipes are
// addressed by their 1-based position in List.
type RecipeService interface {
	Add(ctx context.Context, recipe models.Recipe) error
	List(ctx context.Context) ([]models.Recipe, error)
	Edit(ctx context.Context, number int, recipe models.Recipe) error
	Delete(ctx context.Context, number int) (models.Recipe, error)
	FindByName(ctx context.Context, name string) (*models.Recipe, error)
}

type recipeService struct {
	repo recipes.Repository
	log  logging.Logger
}

func NewRecipeService(repo recipes.Repository, log logging.Logger) RecipeService {
	return &recipeService{repo: repo, log: log}
}

func (s *recipeService) Add(ctx context.Context, recipe models.Recipe) error {
	recipe, err := normalizeRecipe(recipe)
	if err != nil {
		return err
	}
	if err := s.repo.Add(ctx, recipe); err != nil {
		s.log.Error(ctx, "error adding recipe", "name", recipe.Name, "error", err)
		return err
	}
	s.log.Info(ctx, "added recipe", "name", recipe.Name)
	return nil
}

func (s *recipeService) List(ctx context.Context) ([]models.Recipe, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error(ctx, "error listing recipes", "error", err)
		return nil, err
	}
	return list, nil
}

func (s *recipeService) Edit(ctx context.Context, number int, recipe models.Recipe) error {
	recipe, err := normalizeRecipe(recipe)
	if err != nil {
		return err
	}

	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	if number < 1 || number > len(list) {
		s.log.Warn(ctx, "invalid choice during recipe edit", "number", number)
		return fmt.Errorf("recipe %d: %w", number, common.ErrNotFound)
	}

	list[number-1] = recipe
	if err := s.repo.ReplaceAll(ctx, list); err != nil {
		s.log.Error(ctx, "error editing recipe", "number", number, "error", err)
		return err
	}
	s.log.Info(ctx, "updated recipe", "number", number, "name", recipe.Name)
	return nil
}

func (s *recipeService) Delete(ctx context.Context, number int) (models.Recipe, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.Recipe{}, err
	}
	if number < 1 || number > len(list) {
		s.log.Warn(ctx, "invalid choice during recipe deletion", "number", number)
		return models.Recipe{}, fmt.Errorf("recipe %d: %w", number, common.ErrNotFound)
	}

	deleted := list[number-1]
	list = slices.Delete(list, number-1, number)
	if err := s.repo.ReplaceAll(ctx, list); err != nil {
		s.log.Error(ctx, "error deleting recipe", "number", number, "error", err)
		return models.Recipe{}, err
	}
	s.log.Info(ctx, "deleted recipe", "name", deleted.Name)
	return deleted, nil
}

// FindByName matches names by models.FoldKey.
func (s *recipeService) FindByName(ctx context.Context, name string) (*models.Recipe, error) {
	key := models.FoldKey(name)
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if models.FoldKey(list[i].Name) == key {
			return &list[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func normalizeRecipe(r models.Recipe) (models.Recipe, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Steps = strings.TrimSpace(r.Steps)
	r.Ingredients = models.ParseIngredients(strings.Join(r.Ingredients, models.IngredientSeparator))
	if err := r.Validate(); err != nil {
		return r, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return r, nil
}
