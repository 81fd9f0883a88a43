package recipes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *CSVRepository {
	t.Helper()
	return NewCSVRepository(filepath.Join(t.TempDir(), common.RecipesFileName))
}

func TestAddList(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, r.EnsureInitialized(ctx))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	pancakes := models.Recipe{
		Name:        "Pancakes",
		Ingredients: []string{"eggs", "flour", "milk"},
		Steps:       "Mix, then fry.\nServe warm.",
	}
	require.NoError(t, r.Add(ctx, pancakes))
	require.NoError(t, r.Add(ctx, models.Recipe{Name: "Toast", Ingredients: []string{"bread"}}))

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, pancakes, list[0])
	assert.Equal(t, "Toast", list[1].Name)
	assert.Equal(t, []string{"bread"}, list[1].Ingredients)
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, r.Add(ctx, models.Recipe{Name: "A", Ingredients: []string{"x"}}))
	require.NoError(t, r.Add(ctx, models.Recipe{Name: "B", Ingredients: []string{"y"}}))

	require.NoError(t, r.ReplaceAll(ctx, []models.Recipe{{Name: "C", Ingredients: []string{"z"}, Steps: "s"}}))

	b, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "name,ingredients,steps\nC,z,s\n", string(b))
}

func TestList_TwoColumnFile(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	require.NoError(t, os.WriteFile(r.Path(), []byte("Recipe Name,Ingredients\nPasta,\"Flour, Eggs\"\n"), 0o600))
	require.NoError(t, r.EnsureInitialized(ctx))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipe{{Name: "Pasta", Ingredients: []string{"Flour", "Eggs"}}}, list)

	// new rows go after the old ones and both stay readable
	require.NoError(t, r.Add(ctx, models.Recipe{Name: "Toast", Ingredients: []string{"bread"}, Steps: "toast it"}))
	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "toast it", list[1].Steps)
}
