// Package tagger implements the weighted multi-field term-importance engine.
// A fit pass over the whole catalog builds the tag vocabulary and a per-term
// inverse-document-frequency table; the enricher then combines each record's
// declared tags with jargon terms mined from its identifier and description
// into a deterministic, sorted etags string.
//
// Fit must complete before any record is enriched — document frequency needs
// global knowledge of the corpus. Enrichment itself is a pure function of one
// record plus the frozen Statistics, so records can be processed in parallel
// (see EnrichAll).
package tagger

import (
	"math"
	"sort"
	"strings"

	"github.com/corey/tagmint/internal/ports"
)

// Fit builds corpus statistics in one O(records × tags-per-record) pass.
//
// The vocabulary is the union of all lower-cased, non-empty tags. Document
// frequency counts each term once per record, however many times the record
// repeats it in its own tag list. IDF uses the base-10 form
//
//	idf(t) = log10(N) - log10(n_t)
//
// so a term tagged on every record scores exactly 0 and a term tagged on a
// single record scores log10(N). n_t is never floored: every vocabulary term
// was tagged on at least one record, so the score is always finite.
//
// The filtered vocabulary keeps exactly the terms the dictionary does not
// recognize as natural-language words; only those are worth mining out of
// free text, real words would flood the enrichment with generic noise.
func Fit(records []ports.Record, dict ports.Dictionary) (*ports.Statistics, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}
	if dict == nil {
		return nil, ErrDictionaryUnavailable
	}

	// Document frequency, de-duplicated within each record.
	df := make(map[string]int)
	for _, rec := range records {
		seen := make(map[string]bool)
		for _, tag := range SplitTags(rec.Tags) {
			if !seen[tag] {
				df[tag]++
				seen[tag] = true
			}
		}
	}

	logN := math.Log10(float64(len(records)))
	idf := make(map[string]float64, len(df))
	filtered := make([]string, 0, len(df))
	for term, nt := range df {
		idf[term] = logN - math.Log10(float64(nt))
		if !dict.IsKnownWord(term) {
			filtered = append(filtered, term)
		}
	}
	sort.Strings(filtered)

	return &ports.Statistics{
		N:        len(records),
		IDF:      idf,
		Filtered: filtered,
	}, nil
}

// SplitTags splits a comma-separated tag field into lower-cased tags.
// Empty tokens are dropped; order and duplicates are preserved. Tokens are
// not trimmed — whitespace-padded tags are distinct terms, exactly as they
// were declared on the record.
func SplitTags(field string) []string {
	if field == "" {
		return nil
	}
	var tags []string
	for _, raw := range strings.Split(field, ",") {
		if raw == "" {
			continue
		}
		tags = append(tags, strings.ToLower(raw))
	}
	return tags
}
