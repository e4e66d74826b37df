//go:build mage

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

// Browse builds the CLI and opens the interactive browser.
func Browse() error {
	mg.Deps(Init, Build)
	return run(filepath.Join(binDir, binName), "browse")
}

// Search builds the CLI and runs a one-shot lookup of $QUERY.
func Search() error {
	mg.Deps(Init, Build)
	query := strings.TrimSpace(os.Getenv("QUERY"))
	return run(filepath.Join(binDir, binName), "search", query)
}
