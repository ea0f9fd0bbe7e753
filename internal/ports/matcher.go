package ports

// TermMatcher finds vocabulary terms in free text using multi-pattern
// matching (Aho-Corasick). A single pass over the text finds all matching
// terms simultaneously, regardless of vocabulary size. This is O(n + m + z)
// where n=text length, m=total pattern length, z=number of raw matches.
//
// Matching is whole-term: a vocabulary term only counts when it is not
// embedded in a longer run of word characters, so "cli" never matches
// inside "client". The matcher is built once per fit from the filtered
// vocabulary and is immutable between rebuilds.
type TermMatcher interface {
	// FindTerms returns the distinct vocabulary terms present in text,
	// in unspecified order. Case-insensitive: the adapter lower-cases
	// text before matching. Returns nil when nothing matches.
	FindTerms(text string) []string

	// Rebuild replaces the entire term set and reconstructs the automaton.
	// Previous terms are discarded. An empty term set is valid and yields
	// a matcher that never matches.
	Rebuild(terms []string)
}
