package storage

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	repos, err := Init(context.Background(), dir, logging.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, repos)
	assert.Equal(t, dir, repos.Dir)

	want := map[string]string{
		common.UsersFileName:       "identifier,verifier\n",
		common.MealPlanFileName:    "day,meal\n",
		common.RecipesFileName:     "name,ingredients,steps\n",
		common.GroceryListFileName: "item,quantity\n",
	}
	for name, content := range want {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, content, string(b), name)
	}
}

func TestInit_KeepsExistingData(t *testing.T) {
	dir := t.TempDir()
	users := filepath.Join(dir, common.UsersFileName)
	require.NoError(t, os.WriteFile(users, []byte("identifier,verifier\na@x.com,v\n"), 0o600))

	_, err := Init(context.Background(), dir, logging.NewNopLogger())
	require.NoError(t, err)

	b, err := os.ReadFile(users)
	require.NoError(t, err)
	assert.Equal(t, "identifier,verifier\na@x.com,v\n", string(b))
}

func TestInit_DataDirIsAFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	_, err := Init(context.Background(), p, logging.NewNopLogger())
	require.ErrorIs(t, err, common.ErrStorage)
}

func TestInit_ReadOnlyDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	_, err := Init(context.Background(), dir, logging.NewNopLogger())
	require.ErrorIs(t, err, common.ErrStorage)
}
