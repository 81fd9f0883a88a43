package grocery

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/flatfile"
	"github.com/dmitrijs2005/mealplanner/internal/models"
)

var header = []string{"item", "quantity"}

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
		return fmt.Errorf("grocery list: %w", err)
	}
	return nil
}

func (r *CSVRepository) Load(ctx context.Context) (models.GroceryList, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("grocery list: %w", err)
	}

	out := make(models.GroceryList, 0, len(rows))
	for n, row := range rows {
		// single-column lists carry no quantity
		q := 1
		if row[1] != "" {
			if q, err = strconv.Atoi(row[1]); err != nil {
				return nil, common.StorageError("grocery list", fmt.Errorf("row %d: %w", n+1, err))
			}
		}
		out = append(out, models.GroceryItem{Name: row[0], Quantity: q})
	}
	return out, nil
}

func (r *CSVRepository) Save(ctx context.Context, list models.GroceryList) error {
	rows := make([][]string, 0, len(list))
	for _, it := range list {
		rows = append(rows, []string{it.Name, strconv.Itoa(it.Quantity)})
	}
	if err := r.table.Rewrite(ctx, rows); err != nil {
		return fmt.Errorf("grocery list: %w", err)
	}
	return nil
}
