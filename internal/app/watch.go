package app

import (
	"context"
	"time"

	fsw "github.com/corey/tagmint/internal/adapters/fsnotify"
)

// WatchAndEnrich re-runs the full pipeline whenever a page file under
// pages/ changes. Pipeline failures are logged and watching continues —
// a half-written page must not kill the loop. Blocks until ctx is done.
func (a *App) WatchAndEnrich(ctx context.Context, logf func(format string, args ...any)) error {
	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	// Coalesce bursts: one pending trigger is enough, the pipeline refits
	// over the whole directory anyway.
	trigger := make(chan struct{}, 1)
	err = w.Watch(a.Paths.PagesDir, func(path string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}

	logf("watching %s", a.Paths.PagesDir)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-trigger:
			res, err := a.RunPipeline(ctx)
			if err != nil {
				logf("pipeline: %v", err)
				continue
			}
			logf("enriched %d records across %d pages in %s",
				res.RecordCount, len(res.Pages), res.Elapsed.Round(time.Millisecond))
		}
	}
}
