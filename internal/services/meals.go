package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/grocery"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/meals"
)

// ErrNoMealPlan is returned when a grocery list is requested for an empty plan.
var ErrNoMealPlan = fmt.Errorf("no meal plan available: %w", common.ErrNotFound)

// IngredientSource supplies ingredients for a meal that has no matching
// recipe, typically by asking the user.
type IngredientSource func(ctx context.Context, meal string) ([]string, error)

// MealService plans the week and derives grocery lists from the plan.
type MealService interface {
	Plan(ctx context.Context) (models.MealPlan, error)
	PlanWeek(ctx context.Context, plan models.MealPlan) error
	SetMeal(ctx context.Context, day string, meal string) error
	GenerateGroceryList(ctx context.Context, ask IngredientSource) (models.GroceryList, error)
	GroceryList(ctx context.Context) (models.GroceryList, error)
}

// RecipeFinder looks up a recipe by name. RecipeService satisfies it.
type RecipeFinder interface {
	FindByName(ctx context.Context, name string) (*models.Recipe, error)
}

type mealService struct {
	plans   meals.Repository
	grocery grocery.Repository
	recipes RecipeFinder
	log     logging.Logger
}

func NewMealService(plans meals.Repository, groceries grocery.Repository, recipes RecipeFinder, log logging.Logger) MealService {
	return &mealService{plans: plans, grocery: groceries, recipes: recipes, log: log}
}

func (s *mealService) Plan(ctx context.Context) (models.MealPlan, error) {
	plan, err := s.plans.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "error loading meal plan", "error", err)
		return nil, err
	}
	return plan, nil
}

func (s *mealService) PlanWeek(ctx context.Context, plan models.MealPlan) error {
	clean := make(models.MealPlan, len(plan))
	for d, m := range plan {
		clean[d] = strings.TrimSpace(m)
	}
	if err := s.plans.Save(ctx, clean); err != nil {
		s.log.Error(ctx, "error saving meal plan", "error", err)
		return err
	}
	s.log.Info(ctx, "meal plan saved", "meals", len(clean.Entries()))
	return nil
}

func (s *mealService) SetMeal(ctx context.Context, day string, meal string) error {
	d, ok := models.ParseDay(day)
	if !ok {
		return common.ValidationError(fmt.Sprintf("unknown day %q", day))
	}

	plan, err := s.Plan(ctx)
	if err != nil {
		return err
	}
	if plan == nil {
		plan = make(models.MealPlan, 1)
	}
	plan[d] = strings.TrimSpace(meal)

	if err := s.plans.Save(ctx, plan); err != nil {
		s.log.Error(ctx, "error saving meal plan", "error", err)
		return err
	}
	s.log.Info(ctx, "meal updated", "day", d.String())
	return nil
}

// GenerateGroceryList collects the ingredients of every planned meal. A meal
// named like a stored recipe uses the recipe's ingredients; other meals are
// resolved through ask. The result is saved before it is returned.
func (s *mealService) GenerateGroceryList(ctx context.Context, ask IngredientSource) (models.GroceryList, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	if plan.IsEmpty() {
		s.log.Warn(ctx, "no meal plan available to generate grocery list")
		return nil, ErrNoMealPlan
	}

	tally := models.NewTally()
	for _, pm := range plan.Entries() {
		ingredients, err := s.ingredientsFor(ctx, pm.Meal, ask)
		if err != nil {
			return nil, err
		}
		tally.Add(ingredients)
	}

	list := tally.List()
	if err := s.grocery.Save(ctx, list); err != nil {
		s.log.Error(ctx, "error saving grocery list", "error", err)
		return nil, err
	}
	s.log.Info(ctx, "grocery list generated", "items", len(list))
	return list, nil
}

func (s *mealService) GroceryList(ctx context.Context) (models.GroceryList, error) {
	list, err := s.grocery.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "error loading grocery list", "error", err)
		return nil, err
	}
	return list, nil
}

func (s *mealService) ingredientsFor(ctx context.Context, meal string, ask IngredientSource) ([]string, error) {
	r, err := s.recipes.FindByName(ctx, meal)
	if err == nil {
		return r.Ingredients, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if ask == nil {
		return nil, nil
	}
	return ask(ctx, meal)
}
