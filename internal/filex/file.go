// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mealplanner/internal/common"
)

// EnsureDir makes sure dir exists and returns its absolute path. Relative
// paths are resolved against the working directory. Failures match
// common.ErrStorage.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", common.StorageError("resolve "+dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", common.StorageError(fmt.Sprintf("mkdir %s", abs), err)
	}

	return abs, nil
}
