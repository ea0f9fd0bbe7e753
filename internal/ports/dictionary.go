package ports

// Dictionary answers whether a term is a recognized natural-language word.
// The fit pass queries it once per distinct vocabulary term to split the
// vocabulary into real words (noise, excluded from text mining) and jargon
// (the discriminating terms worth mining out of free text).
//
// Results must be referentially stable for the lifetime of a run, which
// makes them safe to memoize. Swapping the adapter (a different wordlist,
// a non-English dictionary, a test double) must not require any change to
// the fit or enrich logic.
type Dictionary interface {
	// IsKnownWord reports whether term is a word in the backing dictionary.
	// Matching is case-insensitive; the caller passes lower-cased terms.
	IsKnownWord(term string) bool
}
