// Package app wires together adapters and domain logic for the tagmint CLI.
// It owns the .tagmint/ data directory layout, the fit → enrich pipeline and
// the page-fetching and watch loops.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/corey/tagmint/internal/adapters/bbolt"
	"github.com/corey/tagmint/internal/adapters/csvfile"
	"github.com/corey/tagmint/internal/adapters/dictionary"
	"github.com/corey/tagmint/internal/adapters/registry"
	"github.com/corey/tagmint/internal/config"
	"github.com/corey/tagmint/internal/ports"
)

// App is the top-level container wiring all components together.
type App struct {
	ProjectRoot string
	Catalog     string // endpoint name, doubles as the storage namespace
	Paths       *Paths
	Config      config.Config

	Store *bbolt.Store
	Dict  ports.Dictionary
}

// Options tweak App construction from the command line.
type Options struct {
	Endpoint string // overrides the configured endpoint when non-empty
}

// New opens an App for the given project root: resolves paths, loads the
// config file, opens the store and the dictionary oracle.
func New(projectRoot string, opts Options) (*App, error) {
	paths := NewPaths(projectRoot)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", paths.Root, err)
	}

	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	catalog, err := registry.CheckEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, err
	}
	dict, err := dictionary.Open(cfg.Dictionary)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		ProjectRoot: projectRoot,
		Catalog:     catalog,
		Paths:       paths,
		Config:      cfg,
		Store:       store,
		Dict:        dict,
	}, nil
}

// Close releases the App's resources.
func (a *App) Close() error {
	return a.Store.Close()
}

// Source returns the record source for the pipeline: cached store pages
// when any exist, otherwise the CSV pages directory.
func (a *App) Source() (ports.RecordSource, error) {
	numbers, err := a.Store.PageNumbers(a.Catalog)
	if err != nil {
		return nil, err
	}
	if len(numbers) > 0 {
		return StoreSource{Store: a.Store, Catalog: a.Catalog}, nil
	}
	return csvfile.Dir{Path: a.Paths.PagesDir}, nil
}

// Fetch downloads catalog pages into the store and mirrors them as CSV files
// under pages/. Already-cached pages are skipped unless force is set.
// Returns the number of pages fetched and skipped.
func (a *App) Fetch(ctx context.Context, client *registry.Client, start, limit int, force bool) (fetched, skipped int, err error) {
	numbers, err := a.Store.PageNumbers(a.Catalog)
	if err != nil {
		return 0, 0, err
	}
	cached := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		cached[n] = true
	}

	for n := start; ; n++ {
		if limit > 0 && n-start >= limit {
			return fetched, skipped, nil
		}
		if cached[n] && !force {
			skipped++
			continue
		}

		page, err := client.GetPage(ctx, n)
		if errors.Is(err, registry.ErrPageNotFound) {
			return fetched, skipped, nil
		}
		if err != nil {
			return fetched, skipped, err
		}

		if err := a.Store.SavePage(a.Catalog, page); err != nil {
			return fetched, skipped, err
		}
		if err := csvfile.WritePage(a.Paths.PagesDir, page); err != nil {
			return fetched, skipped, err
		}
		fetched++
	}
}

// StoreSource adapts cached store pages into a ports.RecordSource.
type StoreSource struct {
	Store   ports.Storage
	Catalog string
}

// Pages delivers cached pages in ascending order, honoring start and limit.
func (s StoreSource) Pages(ctx context.Context, start, limit int, fn func(*ports.Page) error) error {
	numbers, err := s.Store.PageNumbers(s.Catalog)
	if err != nil {
		return err
	}
	delivered := 0
	for _, n := range numbers {
		if n < start {
			continue
		}
		if limit > 0 && delivered >= limit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := s.Store.LoadPage(s.Catalog, n)
		if err != nil {
			return err
		}
		if page == nil {
			continue
		}
		if err := fn(page); err != nil {
			return err
		}
		delivered++
	}
	return nil
}
