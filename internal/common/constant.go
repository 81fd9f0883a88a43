// Package common contains shared constants and sentinel errors used across
// mealplanner components.
package common

// Backing file names, relative to the configured data directory.
const (
	UsersFileName       = "users.csv"
	MealPlanFileName    = "meal_plan.csv"
	RecipesFileName     = "recipes.csv"
	GroceryListFileName = "grocery_list.csv"
)
