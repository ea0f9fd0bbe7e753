package ports

import "context"

// RecordSource streams catalog pages from an ingestion boundary: the
// registry HTTP API, a directory of cached CSV pages, or a test double.
//
// Pages are delivered in ascending page order. The core never cares where
// a page came from — only that every record exposes id, description and
// tags columns.
type RecordSource interface {
	// Pages invokes fn for each page starting at page `start`, for at most
	// `limit` pages (0 = no limit). Iteration stops early if fn returns an
	// error or ctx is cancelled; the first error is returned.
	Pages(ctx context.Context, start, limit int, fn func(*Page) error) error
}
