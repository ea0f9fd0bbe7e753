package tagger

import (
	"errors"
	"fmt"
)

// ErrEmptyCorpus is returned by Fit when called with zero records.
// log10(0) is undefined, so no partial statistics are ever produced.
var ErrEmptyCorpus = errors.New("empty corpus: fit requires at least one record")

// ErrDictionaryUnavailable is returned when the dictionary oracle cannot be
// initialized or reached. Fit cannot compute the filtered vocabulary without
// it, and falling back to "everything is jargon" would change enrichment
// quality unpredictably, so the error is always surfaced.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// FieldError reports a record row missing a required column at the
// ingestion boundary. Rows fail fast instead of being coerced into
// empty strings and corrupting downstream weights.
type FieldError struct {
	Field string // missing column name: "id", "description" or "tags"
	Row   int    // 1-based data row index, 0 when unknown
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("record row %d: missing required field %q", e.Row, e.Field)
	}
	return fmt.Sprintf("record: missing required field %q", e.Field)
}
