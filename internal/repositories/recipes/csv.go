package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/flatfile"
	"github.com/dmitrijs2005/mealplanner/internal/models"
)

var header = []string{"name", "ingredients", "steps"}

type CSVRepository struct {
	table *flatfile.Table
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{table: flatfile.NewTable(path, header...).AllowShortRows()}
}

func (r *CSVRepository) Path() string {
	return r.table.Path()
}

func (r *CSVRepository) EnsureInitialized(ctx context.Context) error {
	if _, err := r.table.Ensure(ctx); err != nil {
		return fmt.Errorf("recipes: %w", err)
	}
	return nil
}

func (r *CSVRepository) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipes: %w", err)
	}

	out := make([]models.Recipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func (r *CSVRepository) Add(ctx context.Context, recipe models.Recipe) error {
	if err := r.table.Append(ctx, toRow(recipe)); err != nil {
		return fmt.Errorf("recipes: %w", err)
	}
	return nil
}

func (r *CSVRepository) ReplaceAll(ctx context.Context, recipes []models.Recipe) error {
	rows := make([][]string, 0, len(recipes))
	for _, rc := range recipes {
		rows = append(rows, toRow(rc))
	}
	if err := r.table.Rewrite(ctx, rows); err != nil {
		return fmt.Errorf("recipes: %w", err)
	}
	return nil
}

func toRow(r models.Recipe) []string {
	return []string{
		strings.TrimSpace(r.Name),
		strings.Join(r.Ingredients, models.IngredientSeparator),
		r.Steps,
	}
}

func fromRow(row []string) models.Recipe {
	return models.Recipe{
		Name:        row[0],
		Ingredients: models.ParseIngredients(row[1]),
		Steps:       row[2],
	}
}
