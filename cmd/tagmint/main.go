// tagmint is a term-importance engine for package catalogs.
// It fits corpus statistics and enriches records with weighted tags.
package main

import (
	"os"

	"github.com/corey/tagmint/cmd/tagmint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
