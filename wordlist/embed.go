// Package wordlist embeds a fallback English wordlist for compile-time
// inclusion. It is used when no system dictionary (/usr/share/dict/words)
// is available and no explicit wordlist path is configured.
//
// The list is intentionally small — roughly the most common English words,
// one per line. A term missing from it is classified as jargon, which errs
// toward mining too many terms rather than too few.
//
// Usage:
//
//	dictionary.NewFromBytes(wordlist.Basic)
package wordlist

import _ "embed"

//go:embed en_basic.txt
var Basic []byte
