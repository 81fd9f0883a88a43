package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/services"
)

// fail prints the user-facing message for err and returns err unchanged.
// Storage faults are already logged by the service that hit them, so only
// unexpected errors are logged here. Declined operations are normal outcomes.
func (a *App) fail(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrStorage):
		a.println("Something went wrong. Please try again later.")
	case errors.Is(err, common.ErrDuplicateAccount):
		a.println("Email already registered. Please try again with a different email.")
	case errors.Is(err, common.ErrInvalidCredentials):
		a.println("Invalid email or password. Please try again.")
	case errors.Is(err, services.ErrNoMealPlan):
		a.println("No meal plan available to generate grocery list.")
	case errors.Is(err, common.ErrNotFound):
		a.println("Invalid choice.")
	case errors.Is(err, common.ErrValidation):
		a.println("Invalid input:", strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": "))
	default:
		a.log.Error(ctx, op+" failed", "error", err)
		a.println("Error:", err)
	}
	return err
}
