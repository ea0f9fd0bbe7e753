package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/tagmint/internal/adapters/registry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	Long:  "Shows the resolved endpoint, data paths, dictionary source, weights and cache state.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	numbers, err := a.Store.PageNumbers(a.Catalog)
	if err != nil {
		return err
	}
	stats, err := a.Store.LoadStatistics(a.Catalog)
	if err != nil {
		return err
	}
	fitted := fmt.Sprintf("%s✗ not fitted%s", colorYellow, colorReset)
	if stats != nil {
		fitted = fmt.Sprintf("%s✓ %d records, %d terms%s", colorGreen, stats.N, stats.VocabSize(), colorReset)
	}

	dict := a.Config.Dictionary
	if dict == "" {
		dict = "(system wordlist, embedded fallback)"
	}

	fmt.Printf("%s⚡ tagmint config%s\n", colorBold, colorReset)
	fmt.Printf("  Endpoint:    %s (%s)\n", a.Catalog, registry.Endpoints[a.Catalog])
	fmt.Printf("  Root:        %s\n", a.Paths.Root)
	fmt.Printf("  DB:          %s\n", a.Paths.DB)
	fmt.Printf("  Pages:       %s (%d cached)\n", a.Paths.PagesDir, len(numbers))
	fmt.Printf("  Dictionary:  %s\n", dict)
	fmt.Printf("  Weights:     tags=%g id=%g description=%g\n",
		a.Config.Weights.Tags, a.Config.Weights.ID, a.Config.Weights.Description)
	fmt.Printf("  Workers:     %d\n", a.Config.Workers)
	fmt.Printf("  Statistics:  %s\n", fitted)
	return nil
}
