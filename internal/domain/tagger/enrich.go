package tagger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/corey/tagmint/internal/ports"
)

// Weights holds the per-source multipliers applied to IDF scores. Any of
// the three may be zero to silence that source's contribution (the term
// still appears in etags with weight 0 when nothing else scores it).
type Weights struct {
	Tags        float64 `toml:"tags"`
	ID          float64 `toml:"id"`
	Description float64 `toml:"description"`
}

// DefaultWeights mirrors the tuning the downstream recommender was trained
// with: the identifier is the strongest signal, then prose, then declared tags.
func DefaultWeights() Weights {
	return Weights{Tags: 2, ID: 6, Description: 4}
}

// Validate rejects negative multipliers.
func (w Weights) Validate() error {
	if w.Tags < 0 || w.ID < 0 || w.Description < 0 {
		return fmt.Errorf("weights must be non-negative: tags=%v id=%v description=%v",
			w.Tags, w.ID, w.Description)
	}
	return nil
}

// Enricher applies frozen fit statistics to one record at a time. It holds
// no per-record state, so a single Enricher is safe for concurrent use once
// constructed.
type Enricher struct {
	stats   *ports.Statistics
	matcher ports.TermMatcher
	weights Weights
}

// NewEnricher builds an enricher over frozen statistics. The matcher must
// have been built from stats.Filtered; it may be nil to disable text mining
// entirely (declared tags still score).
func NewEnricher(stats *ports.Statistics, matcher ports.TermMatcher, weights Weights) *Enricher {
	return &Enricher{stats: stats, matcher: matcher, weights: weights}
}

// Enrich produces an augmented copy of rec carrying the etags column.
// The input record is never mutated. A record with no tags and no mineable
// text yields an empty ETags string, not an error.
func (e *Enricher) Enrich(rec ports.Record) ports.EnrichedRecord {
	acc := make(map[string]float64)

	// Declared tags. A tag repeated within one record overwrites its
	// earlier occurrence rather than accumulating — distinct from the
	// additive mining below. The asymmetry (fit de-duplicates per record,
	// enrich overwrites) is the behavior the recommender was trained on
	// and is preserved as-is.
	for _, tag := range SplitTags(rec.Tags) {
		if idf, ok := e.stats.Idf(tag); ok {
			acc[tag] = e.weights.Tags * idf
		}
	}

	// Jargon mined from the identifier and description accumulates on top
	// of whatever the declared tags contributed, so a term present in both
	// sources collects both contributions.
	e.mine(rec.ID, e.weights.ID, acc)
	e.mine(rec.Description, e.weights.Description, acc)

	return ports.EnrichedRecord{Record: rec, ETags: FormatETags(acc)}
}

// mine adds weight*idf for every distinct filtered-vocabulary term the
// matcher finds in text.
func (e *Enricher) mine(text string, weight float64, acc map[string]float64) {
	if e.matcher == nil || text == "" {
		return
	}
	for _, term := range e.matcher.FindTerms(text) {
		if idf, ok := e.stats.Idf(term); ok {
			acc[term] += weight * idf
		}
	}
}

// FormatETags serializes a term-weight map to the etags wire format:
// "term weight" pairs joined by commas, terms ascending. Weights use
// strconv's shortest 'g' form, which is stable and round-trips exactly,
// so identical inputs always serialize byte-identically.
func FormatETags(weights map[string]float64) string {
	if len(weights) == 0 {
		return ""
	}
	terms := make([]string, 0, len(weights))
	for t := range weights {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t)
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(weights[t], 'g', -1, 64))
	}
	return sb.String()
}
