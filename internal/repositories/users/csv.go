package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/flatfile"
	"github.com/dmitrijs2005/mealplanner/internal/models"
)

var header = []string{"identifier", "verifier"}

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
		return fmt.Errorf("users: %w", err)
	}
	return nil
}

func (r *CSVRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}

	for _, row := range rows {
		if row[0] == identifier {
			return &models.Account{Identifier: row[0], Verifier: row[1]}, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *CSVRepository) Insert(ctx context.Context, account models.Account) error {
	if account.Identifier == "" || account.Verifier == "" {
		return common.ValidationError("identifier and verifier are required")
	}
	if common.HasSeparator(account.Identifier) || common.HasSeparator(account.Verifier) {
		return common.ValidationError("fields must not contain separators")
	}

	if err := r.table.Append(ctx, []string{account.Identifier, account.Verifier}); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	return nil
}
