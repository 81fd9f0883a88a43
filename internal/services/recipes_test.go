package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/dmitrijs2005/mealplanner/internal/repositories/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeService(t *testing.T) RecipeService {
	t.Helper()
	repo := recipes.NewCSVRepository(filepath.Join(t.TempDir(), common.RecipesFileName))
	require.NoError(t, repo.EnsureInitialized(context.Background()))
	return NewRecipeService(repo, logging.NewNopLogger())
}

func seedRecipes(t *testing.T, s RecipeService, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, s.Add(context.Background(), models.Recipe{Name: n, Ingredients: []string{n + "-base"}}))
	}
}

func TestRecipes_AddNormalizesAndValidates(t *testing.T) {
	ctx := context.Background()
	s := newRecipeService(t)

	require.NoError(t, s.Add(ctx, models.Recipe{
		Name:        "  Omelette ",
		Ingredients: []string{" eggs ", "", "salt"},
		Steps:       " whisk and fry ",
	}))

	err := s.Add(ctx, models.Recipe{Name: "", Ingredients: []string{"x"}})
	require.ErrorIs(t, err, common.ErrValidation)
	require.ErrorIs(t, err, models.ErrEmptyRecipeName)

	err = s.Add(ctx, models.Recipe{Name: "Nothing", Ingredients: []string{" ", ""}})
	require.ErrorIs(t, err, common.ErrValidation)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.Recipe{Name: "Omelette", Ingredients: []string{"eggs", "salt"}, Steps: "whisk and fry"}, list[0])
}

func TestRecipes_Edit(t *testing.T) {
	ctx := context.Background()
	s := newRecipeService(t)
	seedRecipes(t, s, "A", "B", "C")

	require.NoError(t, s.Edit(ctx, 2, models.Recipe{Name: "B2", Ingredients: []string{"new"}}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "B2", list[1].Name)
	assert.Equal(t, []string{"new"}, list[1].Ingredients)
	assert.Equal(t, "C", list[2].Name)
}

func TestRecipes_OutOfRangeLeavesFileAlone(t *testing.T) {
	ctx := context.Background()
	s := newRecipeService(t)
	seedRecipes(t, s, "A")

	require.ErrorIs(t, s.Edit(ctx, 0, models.Recipe{Name: "X", Ingredients: []string{"y"}}), common.ErrNotFound)
	require.ErrorIs(t, s.Edit(ctx, 2, models.Recipe{Name: "X", Ingredients: []string{"y"}}), common.ErrNotFound)
	_, err := s.Delete(ctx, 5)
	require.ErrorIs(t, err, common.ErrNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
}

func TestRecipes_Delete(t *testing.T) {
	ctx := context.Background()
	s := newRecipeService(t)
	seedRecipes(t, s, "A", "B", "C")

	deleted, err := s.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", deleted.Name)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Name)
	assert.Equal(t, "C", list[1].Name)
}

func TestRecipes_FindByName(t *testing.T) {
	ctx := context.Background()
	s := newRecipeService(t)
	seedRecipes(t, s, "Pasta Bake")

	r, err := s.FindByName(ctx, " pasta bake ")
	require.NoError(t, err)
	assert.Equal(t, "Pasta Bake", r.Name)

	_, err = s.FindByName(ctx, "Pasta")
	require.ErrorIs(t, err, common.ErrNotFound)
}
