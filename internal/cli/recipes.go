package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/models"
)

func (a *App) AddRecipe(ctx context.Context) error {
	a.println("\n=== Add Recipe ===")

	name, err := getSimpleText(a.reader, "Enter recipe name", a.out)
	if err != nil {
		return err
	}
	ingredients, err := getSimpleText(a.reader, "Enter ingredients (comma-separated)", a.out)
	if err != nil {
		return err
	}
	steps, err := getMultiline(a.reader, "Enter preparation steps", a.out)
	if err != nil {
		return err
	}

	recipe := models.Recipe{Name: name, Ingredients: models.ParseIngredients(ingredients), Steps: steps}
	if err := a.recipeService.Add(ctx, recipe); err != nil {
		return a.fail(ctx, "add recipe", err)
	}

	a.println("Recipe added successfully!")
	return nil
}

func (a *App) ListRecipes(ctx context.Context) error {
	a.println("\n=== View Recipes ===")
	_, err := a.printRecipes(ctx)
	return err
}

// EditRecipe replaces the fields of a recipe chosen by number. Empty answers
// keep the current value.
func (a *App) EditRecipe(ctx context.Context) error {
	a.println("\n=== Edit Recipe ===")

	list, err := a.printRecipes(ctx)
	if err != nil || len(list) == 0 {
		return err
	}

	n, err := a.chooseRecipe("Enter the number of the recipe to edit")
	if errors.Is(err, common.ErrNotFound) {
		return a.fail(ctx, "edit recipe", err)
	} else if err != nil {
		return err
	}
	if n < 1 || n > len(list) {
		return a.fail(ctx, "edit recipe", fmt.Errorf("recipe %d: %w", n, common.ErrNotFound))
	}
	current := list[n-1]

	name, err := getSimpleText(a.reader, fmt.Sprintf("New name [%s]", current.Name), a.out)
	if err != nil {
		return err
	}
	ingredients, err := getSimpleText(a.reader,
		fmt.Sprintf("New ingredients, comma-separated [%s]", strings.Join(current.Ingredients, ", ")), a.out)
	if err != nil {
		return err
	}
	steps, err := getMultiline(a.reader, "New preparation steps (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	updated := current
	if name != "" {
		updated.Name = name
	}
	if ingredients != "" {
		updated.Ingredients = models.ParseIngredients(ingredients)
	}
	if steps != "" {
		updated.Steps = steps
	}

	if err := a.recipeService.Edit(ctx, n, updated); err != nil {
		return a.fail(ctx, "edit recipe", err)
	}

	a.println("Recipe updated successfully!")
	return nil
}

func (a *App) DeleteRecipe(ctx context.Context) error {
	a.println("\n=== Delete Recipe ===")

	list, err := a.printRecipes(ctx)
	if err != nil || len(list) == 0 {
		return err
	}

	n, err := a.chooseRecipe("Enter the number of the recipe to delete")
	if errors.Is(err, common.ErrNotFound) {
		return a.fail(ctx, "delete recipe", err)
	} else if err != nil {
		return err
	}

	deleted, err := a.recipeService.Delete(ctx, n)
	if err != nil {
		return a.fail(ctx, "delete recipe", err)
	}

	a.printf("Recipe '%s' deleted successfully!\n", deleted.Name)
	return nil
}

// printRecipes prints the numbered recipe list and returns it.
func (a *App) printRecipes(ctx context.Context) ([]models.Recipe, error) {
	list, err := a.recipeService.List(ctx)
	if err != nil {
		return nil, a.fail(ctx, "list recipes", err)
	}

	if len(list) == 0 {
		a.println("No recipes found.")
		return list, nil
	}
	for i, r := range list {
		a.printf("%d. %s - Ingredients: %s\n", i+1, r.Name, strings.Join(r.Ingredients, ", "))
		if r.Steps != "" {
			a.printf("   Steps: %s\n", strings.ReplaceAll(r.Steps, "\n", "\n          "))
		}
	}
	return list, nil
}

func (a *App) chooseRecipe(prompt string) (int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("recipe number %q: %w", s, common.ErrNotFound)
	}
	return n, nil
}
