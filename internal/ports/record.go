// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Record is one catalog entry as ingested from a page. All three fields are
// string-valued; Tags is a comma-separated list and may be empty, but the
// column itself is required (an absent column is an ingestion error, not an
// empty record).
type Record struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

// EnrichedRecord is a Record plus its derived etags column. The embedded
// Record is a copy — enrichment never mutates the source row.
//
// ETags format: "term₁ weight₁,term₂ weight₂,..." with terms in ascending
// lexicographic order, or the empty string when no term scored.
type EnrichedRecord struct {
	Record
	ETags string `json:"etags"`
}

// Page is one fetched (or cached) catalog page of records.
type Page struct {
	Number  int      `json:"number"`
	Records []Record `json:"records"`
}
