package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/tagmint/internal/app"
)

var endpointFlag string

var rootCmd = &cobra.Command{
	Use:   "tagmint",
	Short: "tagmint — weighted tag enrichment for package catalogs",
	Long:  "Fits IDF statistics over a package catalog and enriches each record with weighted, text-mined tags.",
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// openApp wires a fully configured App for the current project root,
// honoring the --endpoint override.
func openApp() (*app.App, error) {
	a, err := app.New(projectRoot(), app.Options{Endpoint: endpointFlag})
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return a, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Catalog endpoint: dev|int|prod (overrides config)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(wipeCmd)
}
