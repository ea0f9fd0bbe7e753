// Package dictionary implements the ports.Dictionary oracle backed by a
// plain wordlist file, one word per line. The fit pass uses it to separate
// natural-language tags (noise) from jargon (the mineable vocabulary).
//
// Resolution order: an explicit path from config, then the system wordlist
// at /usr/share/dict/words, then the embedded fallback list compiled into
// the binary. An explicit path that cannot be read is fatal — silently
// treating every term as jargon would change enrichment quality
// unpredictably.
package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/corey/tagmint/internal/domain/tagger"
)

// DefaultPath is the conventional system wordlist location.
const DefaultPath = "/usr/share/dict/words"

// Wordlist is an in-memory word set. Lookups are O(1) and the set is
// immutable after construction, so a single Wordlist is safe for
// concurrent use and referentially stable for the lifetime of a run.
type Wordlist struct {
	words map[string]struct{}
}

// Open loads the wordlist at path. An empty path tries DefaultPath and
// falls back to the embedded list when the system has none. A non-empty
// path that cannot be read returns tagger.ErrDictionaryUnavailable.
func Open(path string) (*Wordlist, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", tagger.ErrDictionaryUnavailable, path, err)
		}
		return NewFromBytes(data), nil
	}
	if data, err := os.ReadFile(DefaultPath); err == nil {
		return NewFromBytes(data), nil
	}
	return Embedded(), nil
}

// NewFromBytes builds a Wordlist from newline-separated word data.
// Words are lower-cased; blank lines and carriage returns are dropped.
func NewFromBytes(data []byte) *Wordlist {
	w := &Wordlist{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		w.words[strings.ToLower(word)] = struct{}{}
	}
	return w
}

// Embedded returns the compiled-in fallback English list.
func Embedded() *Wordlist {
	return NewFromBytes(embeddedBasic)
}

// IsKnownWord reports whether term is in the wordlist, case-insensitively.
func (w *Wordlist) IsKnownWord(term string) bool {
	_, ok := w.words[strings.ToLower(term)]
	return ok
}

// Len returns the number of distinct words loaded.
func (w *Wordlist) Len() int {
	return len(w.words)
}
