package ports

// Statistics is the frozen output of the fit pass over a whole catalog:
// the tag vocabulary with per-term inverse document frequency, plus the
// filtered (non-dictionary) subset eligible for free-text mining.
//
// Invariants, enforced by the fit pass:
//   - every vocabulary term has exactly one IDF entry
//   - 0 <= idf(t) <= log10(N); idf is 0 only for a term tagged on every
//     record and log10(N) only for a term tagged on exactly one
//   - Filtered is sorted ascending and is a subset of the IDF keys
//
// Statistics must be fully built before any enrichment starts and is
// never mutated afterwards, so concurrent readers need no locking.
type Statistics struct {
	N        int                `json:"n"`        // total record count at fit time
	IDF      map[string]float64 `json:"idf"`      // lower-cased term -> idf score
	Filtered []string           `json:"filtered"` // non-dictionary terms, sorted
}

// Idf returns the IDF score for a term and whether the term is in the
// vocabulary at all.
func (s *Statistics) Idf(term string) (float64, bool) {
	v, ok := s.IDF[term]
	return v, ok
}

// VocabSize returns the number of distinct terms in the vocabulary.
func (s *Statistics) VocabSize() int {
	return len(s.IDF)
}

// Storage persists catalog state to durable storage. The backing store
// (bbolt) is catalog-scoped: each catalogID (typically the endpoint name)
// gets its own namespace. Concurrent reads are safe; writes are serialized
// by the adapter.
//
// Crash safety: all Save methods must be transactional. A crash mid-write
// must not corrupt previously committed data.
type Storage interface {
	// SaveStatistics persists fit statistics for a catalog.
	// Overwrites any prior statistics for this catalogID.
	SaveStatistics(catalogID string, stats *Statistics) error

	// LoadStatistics retrieves fit statistics for a catalog.
	// Returns nil, nil if none exist (fresh catalog).
	LoadStatistics(catalogID string) (*Statistics, error)

	// SavePage caches one fetched catalog page.
	SavePage(catalogID string, page *Page) error

	// LoadPage retrieves a cached page. Returns nil, nil if the page
	// has not been cached.
	LoadPage(catalogID string, number int) (*Page, error)

	// PageNumbers returns the cached page numbers for a catalog in
	// ascending order. Empty slice (not nil error) for a fresh catalog.
	PageNumbers(catalogID string) ([]int, error)

	// SaveVectors persists enriched etags keyed by record id.
	SaveVectors(catalogID string, vectors map[string]string) error

	// LoadVectors retrieves the enriched etags map.
	// Returns nil, nil if none exist.
	LoadVectors(catalogID string) (map[string]string, error)

	// DeleteCatalog removes all data (statistics + pages + vectors) for
	// a catalog. Idempotent: deleting a nonexistent catalog is not an error.
	DeleteCatalog(catalogID string) error
}
