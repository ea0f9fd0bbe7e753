package app

import (
	"context"
	"fmt"
	"time"

	"github.com/corey/tagmint/internal/adapters/ahocorasick"
	"github.com/corey/tagmint/internal/domain/tagger"
	"github.com/corey/tagmint/internal/ports"
)

// PageResult is one enriched page, boundaries preserved for CSV output.
type PageResult struct {
	Number  int
	Records []ports.EnrichedRecord
}

// Result summarizes one fit + enrich run.
type Result struct {
	Stats       *ports.Statistics
	Pages       []PageResult
	RecordCount int
	Elapsed     time.Duration
}

// Vectors flattens the result into the record-id → etags map persisted for
// the downstream feature vectorizer.
func (r *Result) Vectors() map[string]string {
	vectors := make(map[string]string, r.RecordCount)
	for _, page := range r.Pages {
		for _, rec := range page.Records {
			vectors[rec.ID] = rec.ETags
		}
	}
	return vectors
}

// Pipeline runs the fit → enrich flow over a record source. Fit needs the
// whole corpus before the first record can be enriched, so the source is
// drained completely up front; enrichment then fans out across workers.
type Pipeline struct {
	Source  ports.RecordSource
	Dict    ports.Dictionary
	Weights tagger.Weights
	Workers int

	// Store persists statistics and vectors under Catalog when non-nil.
	Store   ports.Storage
	Catalog string
}

// Run executes the pipeline.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	var pages []*ports.Page
	var records []ports.Record
	err := p.Source.Pages(ctx, 0, 0, func(page *ports.Page) error {
		pages = append(pages, page)
		records = append(records, page.Records...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	stats, err := tagger.Fit(records, p.Dict)
	if err != nil {
		return nil, err
	}

	matcher := ahocorasick.New(stats.Filtered)
	enricher := tagger.NewEnricher(stats, matcher, p.Weights)
	enriched, err := tagger.EnrichAll(ctx, enricher, records, p.Workers)
	if err != nil {
		return nil, err
	}

	// Re-slice the flat result along the original page boundaries.
	result := &Result{Stats: stats, RecordCount: len(records)}
	offset := 0
	for _, page := range pages {
		result.Pages = append(result.Pages, PageResult{
			Number:  page.Number,
			Records: enriched[offset : offset+len(page.Records)],
		})
		offset += len(page.Records)
	}

	if p.Store != nil {
		if err := p.Store.SaveStatistics(p.Catalog, stats); err != nil {
			return nil, fmt.Errorf("persist statistics: %w", err)
		}
		if err := p.Store.SaveVectors(p.Catalog, result.Vectors()); err != nil {
			return nil, fmt.Errorf("persist vectors: %w", err)
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// RunPipeline runs the full fit → enrich flow over the App's current record
// source, persisting statistics and vectors.
func (a *App) RunPipeline(ctx context.Context) (*Result, error) {
	src, err := a.Source()
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		Source:  src,
		Dict:    a.Dict,
		Weights: a.Config.Weights,
		Workers: a.Config.Workers,
		Store:   a.Store,
		Catalog: a.Catalog,
	}
	return p.Run(ctx)
}

// LoadRecords drains the App's record source. Used by fit, which needs the
// corpus but not the enrichment pass.
func (a *App) LoadRecords(ctx context.Context) ([]ports.Record, int, error) {
	src, err := a.Source()
	if err != nil {
		return nil, 0, err
	}
	var records []ports.Record
	pageCount := 0
	err = src.Pages(ctx, 0, 0, func(page *ports.Page) error {
		pageCount++
		records = append(records, page.Records...)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("load records: %w", err)
	}
	return records, pageCount, nil
}
