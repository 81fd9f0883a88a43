// Package buildinfo exposes version metadata injected at link time.
//
//	go build -ldflags "-X github.com/dmitrijs2005/mealplanner/internal/buildinfo.Version=1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A" // set by ldflags
	Date    = "N/A" // set by ldflags
	Commit  = "N/A" // set by ldflags
)

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", Version, Date, Commit)
}
