package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Aho-Corasick term matcher — whole-term vocabulary matching in free text
// Expectation: one pass finds every filtered-vocabulary term, substring hits
// inside longer words are rejected, results are distinct.
// =============================================================================

func TestFindTerms_SingleTerm(t *testing.T) {
	m := New([]string{"netcore"})
	assert.Equal(t, []string{"netcore"}, m.FindTerms("a netcore cli tool"))
}

func TestFindTerms_MultipleTerms(t *testing.T) {
	m := New([]string{"netcore", "cli", "grpc"})
	got := m.FindTerms("netcore cli bindings for grpc")
	assert.ElementsMatch(t, []string{"netcore", "cli", "grpc"}, got)
}

func TestFindTerms_WholeTermOnly(t *testing.T) {
	// "cli" embedded in "client" is not a term occurrence.
	m := New([]string{"cli"})
	assert.Nil(t, m.FindTerms("http client library"))
	assert.Equal(t, []string{"cli"}, m.FindTerms("http cli library"))
}

func TestFindTerms_PunctuationIsBoundary(t *testing.T) {
	// Dots, hyphens and commas delimit terms; identifiers like "Foo.Cli"
	// still expose their parts.
	m := New([]string{"cli", "net"})
	assert.ElementsMatch(t, []string{"cli", "net"}, m.FindTerms("Foo.Cli,asp.net"))
}

func TestFindTerms_TermWithPunctuation(t *testing.T) {
	// Vocabulary terms may themselves contain non-word characters.
	m := New([]string{"asp.net-core", "net"})
	got := m.FindTerms("built on asp.net-core runtime")
	assert.Contains(t, got, "asp.net-core")
	assert.Contains(t, got, "net")
}

func TestFindTerms_CaseInsensitive(t *testing.T) {
	m := New([]string{"netcore"})
	assert.Equal(t, []string{"netcore"}, m.FindTerms("NetCore SDK"))
}

func TestFindTerms_Distinct(t *testing.T) {
	// A term occurring many times reports once.
	m := New([]string{"cli"})
	assert.Equal(t, []string{"cli"}, m.FindTerms("cli cli cli"))
}

func TestFindTerms_NoMatch(t *testing.T) {
	m := New([]string{"netcore"})
	assert.Nil(t, m.FindTerms("hello world"))
}

func TestFindTerms_EmptyVocabulary(t *testing.T) {
	m := New(nil)
	assert.Nil(t, m.FindTerms("anything at all"))
}

func TestRebuild_ReplacesTermSet(t *testing.T) {
	m := New([]string{"old"})
	m.Rebuild([]string{"new"})
	assert.Nil(t, m.FindTerms("old habits"))
	assert.Equal(t, []string{"new"}, m.FindTerms("new habits"))
}

func TestFindTerms_DoesNotAliasInput(t *testing.T) {
	terms := []string{"cli"}
	m := New(terms)
	terms[0] = "mutated"
	assert.Equal(t, []string{"cli"}, m.FindTerms("a cli tool"))
}
