package dictionary

import "github.com/corey/tagmint/wordlist"

// embeddedBasic aliases the compiled-in fallback list so the rest of the
// package never touches the embed directly.
var embeddedBasic = wordlist.Basic
