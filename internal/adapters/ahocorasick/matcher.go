// Package ahocorasick implements the ports.TermMatcher interface using an
// Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick library
// for O(n + m + z) multi-term matching: one pass over the text finds every
// vocabulary term at once.
package ahocorasick

import (
	"strings"
	"unicode/utf8"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher finds filtered-vocabulary terms in free text. Build once from the
// fit output; FindTerms is then safe for concurrent use. Terms are expected
// lower-cased (the vocabulary is), and input text is lower-cased here.
type Matcher struct {
	automaton aho.AhoCorasick
	terms     []string
	built     bool
}

// New builds a matcher from the given vocabulary terms.
func New(terms []string) *Matcher {
	m := &Matcher{}
	m.Rebuild(terms)
	return m
}

// Rebuild compiles a fresh automaton from terms, discarding the previous
// set. An empty set yields a matcher that never matches.
func (m *Matcher) Rebuild(terms []string) {
	m.terms = make([]string, len(terms))
	copy(m.terms, terms)

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(m.terms)
	m.built = true
}

// FindTerms returns the distinct vocabulary terms present in text.
// Matching is whole-term: a hit flanked by a word character on either side
// is discarded, so "cli" never matches inside "client". Overlapping
// candidates are all considered — "net" still matches in "asp.net" because
// the dot is a boundary.
func (m *Matcher) FindTerms(text string) []string {
	if !m.built || len(m.terms) == 0 || text == "" {
		return nil
	}
	content := []byte(strings.ToLower(text))

	seen := make(map[string]bool)
	var result []string
	iter := m.automaton.IterOverlappingByte(content)
	for next := iter.Next(); next != nil; next = iter.Next() {
		match := *next
		if !wholeTerm(content, match.Start(), match.End()) {
			continue
		}
		term := m.terms[match.Pattern()]
		if !seen[term] {
			seen[term] = true
			result = append(result, term)
		}
	}
	return result
}

// wholeTerm reports whether the match at [start,end) sits on word boundaries:
// the bytes on either side must not be word characters.
func wholeTerm(content []byte, start, end int) bool {
	if start > 0 && isWordByte(content[start-1]) {
		return false
	}
	if end < len(content) && isWordByte(content[end]) {
		return false
	}
	return true
}

// isWordByte mirrors the \w class for ASCII. Continuation bytes of multi-byte
// UTF-8 sequences count as word characters so a boundary never splits a rune.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	case b >= utf8.RuneSelf:
		return true
	}
	return false
}
