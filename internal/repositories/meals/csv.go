package meals

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/flatfile"
	"github.com/dmitrijs2005/mealplanner/internal/models"
)

var header = []string{"day", "meal"}

type CSVRepository struct {
	table *flatfile.Table
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{table: flatfile.NewTable(path, header...)}
}

func (r *CSVRepository) Path() string {
	return r.table.Path()
}

func (r *CSVRepository) EnsureInitialized(ctx context.Context) error {
	if _, err := r.table.Ensure(ctx); err != nil {
		return fmt.Errorf("meal plan: %w", err)
	}
	return nil
}

// Load reads the plan. A later row for the same day overrides an earlier one.
func (r *CSVRepository) Load(ctx context.Context) (models.MealPlan, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("meal plan: %w", err)
	}

	plan := make(models.MealPlan, len(rows))
	for n, row := range rows {
		day, ok := models.ParseDay(row[0])
		if !ok {
			return nil, common.StorageError("meal plan", fmt.Errorf("row %d: unknown day %q", n+1, row[0]))
		}
		plan[day] = strings.TrimSpace(row[1])
	}
	return plan, nil
}

// Save writes one row per weekday, Monday first. Days without a meal are
// stored with an empty meal cell.
func (r *CSVRepository) Save(ctx context.Context, plan models.MealPlan) error {
	rows := make([][]string, 0, len(models.Week))
	for _, d := range models.Week {
		rows = append(rows, []string{d.String(), strings.TrimSpace(plan[d])})
	}

	if err := r.table.Rewrite(ctx, rows); err != nil {
		return fmt.Errorf("meal plan: %w", err)
	}
	return nil
}
