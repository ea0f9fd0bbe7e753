package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/tagmint/internal/domain/tagger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-enrich whenever a page file changes",
	Long:  "Watches the pages/ directory and re-runs the full fit + enrich pipeline on every page change. Runs until interrupted.",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logf := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "⚡ "+format+"\n", args...)
	}

	// Initial pass. An empty corpus is fine here, pages may arrive later.
	if res, err := a.RunPipeline(ctx); err == nil {
		logf("enriched %d records across %d pages", res.RecordCount, len(res.Pages))
	} else if !errors.Is(err, tagger.ErrEmptyCorpus) {
		return err
	}

	err = a.WatchAndEnrich(ctx, logf)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\n⚡ shutting down...")
		return nil
	}
	return err
}
