package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/models"
)

// PlanWeek asks for a meal for each day and saves the whole week. An empty
// answer leaves the day unplanned.
func (a *App) PlanWeek(ctx context.Context) error {
	a.println("\n=== Plan Meals ===")

	plan := make(models.MealPlan, len(models.Week))
	for _, day := range models.Week {
		meal, err := getSimpleText(a.reader, "Enter meal for "+day.String(), a.out)
		if err != nil {
			return err
		}
		plan[day] = meal
	}

	if err := a.mealService.PlanWeek(ctx, plan); err != nil {
		return a.fail(ctx, "plan week", err)
	}

	a.println("Meal plan saved successfully!")
	return nil
}

// ViewPlan prints the planned meals in week order.
func (a *App) ViewPlan(ctx context.Context) error {
	a.println("\n=== View Meal Plan ===")

	plan, err := a.mealService.Plan(ctx)
	if err != nil {
		return a.fail(ctx, "view plan", err)
	}

	if plan.IsEmpty() {
		a.println("No meal plan found.")
		return nil
	}
	for _, e := range plan.Entries() {
		a.printf("%s: %s\n", e.Day, e.Meal)
	}
	return nil
}

// SetDay changes the meal of one day. Day and meal may be given as
// arguments ("setday fri fish and chips"); missing parts are prompted for.
func (a *App) SetDay(ctx context.Context, args []string) error {
	var day, meal string
	if len(args) > 0 {
		day = args[0]
	}
	if len(args) > 1 {
		meal = strings.Join(args[1:], " ")
	}

	var err error
	if day == "" {
		if day, err = getSimpleText(a.reader, "Enter the day of the week (e.g., Monday)", a.out); err != nil {
			return err
		}
	}
	if meal == "" {
		if meal, err = getSimpleText(a.reader, "Enter the meal name (empty to clear)", a.out); err != nil {
			return err
		}
	}

	if err := a.mealService.SetMeal(ctx, day, meal); err != nil {
		return a.fail(ctx, "set meal", err)
	}

	if d, ok := models.ParseDay(day); ok {
		day = d.String()
	}
	a.printf("Meal for %s saved.\n", day)
	return nil
}

// GenerateGroceryList builds the list from the plan, asking for ingredients
// of meals that have no recipe, then prints it.
func (a *App) GenerateGroceryList(ctx context.Context) error {
	a.println("\n=== Generate Grocery List ===")

	ask := func(_ context.Context, meal string) ([]string, error) {
		prompt := fmt.Sprintf("Enter ingredients for %s (comma-separated)", meal)
		s, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return nil, err
		}
		return models.ParseIngredients(s), nil
	}

	list, err := a.mealService.GenerateGroceryList(ctx, ask)
	if err != nil {
		return a.fail(ctx, "generate grocery list", err)
	}

	if len(list) == 0 {
		a.println("No ingredients found in the meal plan.")
	} else {
		a.printGroceryList(list)
	}
	a.println("Grocery list generated and saved!")
	return nil
}

// ShowGroceryList prints the most recently generated list.
func (a *App) ShowGroceryList(ctx context.Context) error {
	list, err := a.mealService.GroceryList(ctx)
	if err != nil {
		return a.fail(ctx, "show grocery list", err)
	}

	if len(list) == 0 {
		a.println("No grocery list found. Generate one from the main menu.")
		return nil
	}
	a.printGroceryList(list)
	return nil
}

func (a *App) printGroceryList(list models.GroceryList) {
	a.println("\n=== Grocery List ===")
	for _, item := range list {
		a.printf("%s: %d\n", item.Name, item.Quantity)
	}
}
