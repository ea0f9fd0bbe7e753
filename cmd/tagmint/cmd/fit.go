package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/tagmint/internal/domain/tagger"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit IDF statistics over the cached corpus",
	Long:  "Computes per-term inverse document frequencies over every cached record and persists them for enrichment.",
	RunE:  runFit,
}

func runFit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	start := time.Now()
	records, pageCount, err := a.LoadRecords(cmd.Context())
	if err != nil {
		return err
	}

	stats, err := tagger.Fit(records, a.Dict)
	if err != nil {
		return err
	}
	if err := a.Store.SaveStatistics(a.Catalog, stats); err != nil {
		return fmt.Errorf("persist statistics: %w", err)
	}

	fmt.Print(formatStatistics(stats, pageCount, time.Since(start)))
	return nil
}
