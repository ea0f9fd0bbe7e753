package tagger

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/tagmint/internal/ports"
)

// =============================================================================
// Enricher — per-record weighted term merging and etags serialization
// Expectation: declared tags overwrite, mined terms accumulate, output is
// sorted, deterministic and round-trips numerically.
// =============================================================================

// fakeMatcher returns canned term hits per input text.
type fakeMatcher struct {
	hits map[string][]string
}

func (m *fakeMatcher) FindTerms(text string) []string { return m.hits[text] }
func (m *fakeMatcher) Rebuild(terms []string)         {}

func fitCorpus(t *testing.T, records []ports.Record) *ports.Statistics {
	t.Helper()
	stats, err := Fit(records, &fakeDict{})
	require.NoError(t, err)
	return stats
}

func TestEnrich_DeclaredTagsOnly(t *testing.T) {
	records := []ports.Record{
		rec("a", "", "foo,bar"),
		rec("b", "", "bar"),
	}
	stats := fitCorpus(t, records)
	e := NewEnricher(stats, nil, Weights{Tags: 2, ID: 6, Description: 4})

	got := e.Enrich(records[0])
	want := fmt.Sprintf("bar 0,foo %s", formatWeight(2*math.Log10(2)))
	assert.Equal(t, want, got.ETags)
}

func TestEnrich_Deterministic(t *testing.T) {
	records := []ports.Record{
		rec("Pkg.One", "a tool with grpc support", "grpc,cli,tool"),
		rec("Pkg.Two", "another thing", "cli"),
	}
	stats := fitCorpus(t, records)
	matcher := &fakeMatcher{hits: map[string][]string{
		"a tool with grpc support": {"grpc", "tool"},
	}}
	e := NewEnricher(stats, matcher, DefaultWeights())

	first := e.Enrich(records[0])
	second := e.Enrich(records[0])
	assert.Equal(t, first.ETags, second.ETags, "same record, same statistics, byte-identical etags")
}

func TestEnrich_DuplicateTagIdempotent(t *testing.T) {
	// tags "foo,foo" scores exactly like tags "foo": last value wins,
	// no accumulation for declared tags.
	corpusDup := []ports.Record{rec("a", "", "foo,foo"), rec("b", "", "bar")}
	corpusOne := []ports.Record{rec("a", "", "foo"), rec("b", "", "bar")}

	eDup := NewEnricher(fitCorpus(t, corpusDup), nil, DefaultWeights())
	eOne := NewEnricher(fitCorpus(t, corpusOne), nil, DefaultWeights())

	assert.Equal(t, eOne.Enrich(corpusOne[0]).ETags, eDup.Enrich(corpusDup[0]).ETags)
}

func TestEnrich_OrderingStrictAscending(t *testing.T) {
	records := []ports.Record{
		rec("a", "", "zeta,alpha,mid,beta"),
		rec("b", "", "alpha"),
	}
	stats := fitCorpus(t, records)
	e := NewEnricher(stats, nil, DefaultWeights())

	etags := e.Enrich(records[0]).ETags
	require.NotEmpty(t, etags)

	var terms []string
	for _, pair := range strings.Split(etags, ",") {
		fields := strings.SplitN(pair, " ", 2)
		require.Len(t, fields, 2, "pair %q", pair)
		terms = append(terms, fields[0])
	}
	assert.True(t, sort.StringsAreSorted(terms), "terms ascending: %v", terms)
	for i := 1; i < len(terms); i++ {
		assert.NotEqual(t, terms[i-1], terms[i], "no duplicate terms")
	}
}

func TestEnrich_AdditivityAcrossSources(t *testing.T) {
	// A term that is both a declared tag and mined from the description
	// collects w.Tags*idf + w.Description*idf.
	records := []ports.Record{
		rec("a", "uses grpc transport", "grpc"),
		rec("b", "plain", "other"),
	}
	stats := fitCorpus(t, records)
	matcher := &fakeMatcher{hits: map[string][]string{
		"uses grpc transport": {"grpc"},
	}}
	w := Weights{Tags: 2, ID: 6, Description: 4}
	e := NewEnricher(stats, matcher, w)

	idf, _ := stats.Idf("grpc")
	want := fmt.Sprintf("grpc %s", formatWeight(w.Tags*idf+w.Description*idf))
	assert.Equal(t, want, e.Enrich(records[0]).ETags)
}

func TestEnrich_EndToEndExample(t *testing.T) {
	// Two-record catalog: idf(netcore)=0, idf(cli)=log10(2). With weights
	// {tags:2, id:6, description:4} and "cli" re-matched in R1's
	// description, cli scores 6*log10(2) and netcore stays at 0.
	r1 := rec("Foo.Bar", "a netcore cli tool", "netcore,cli")
	r2 := rec("Baz", "baz thing", "netcore")
	stats := fitCorpus(t, []ports.Record{r1, r2})

	matcher := &fakeMatcher{hits: map[string][]string{
		"a netcore cli tool": {"netcore", "cli"},
	}}
	e := NewEnricher(stats, matcher, Weights{Tags: 2, ID: 6, Description: 4})

	want := fmt.Sprintf("cli %s,netcore 0", formatWeight(6*math.Log10(2)))
	assert.Equal(t, want, e.Enrich(r1).ETags)

	// R2: netcore declared, nothing mined, idf 0.
	assert.Equal(t, "netcore 0", e.Enrich(r2).ETags)
}

func TestEnrich_EmptyRecord(t *testing.T) {
	records := []ports.Record{rec("a", "", "foo"), rec("", "", "")}
	stats := fitCorpus(t, records)
	e := NewEnricher(stats, &fakeMatcher{}, DefaultWeights())

	got := e.Enrich(records[1])
	assert.Equal(t, "", got.ETags, "empty sources yield empty etags, not a failure")
}

func TestEnrich_UnknownTagSkipped(t *testing.T) {
	// A tag that never entered the fit corpus has no IDF and contributes
	// nothing when enriching an out-of-corpus record.
	records := []ports.Record{rec("a", "", "foo"), rec("b", "", "bar")}
	stats := fitCorpus(t, records)
	e := NewEnricher(stats, nil, DefaultWeights())

	got := e.Enrich(rec("x", "", "unseen,foo"))
	want := fmt.Sprintf("foo %s", formatWeight(2*math.Log10(2)))
	assert.Equal(t, want, got.ETags)
}

func TestEnrich_DoesNotMutateSource(t *testing.T) {
	records := []ports.Record{rec("a", "desc", "foo"), rec("b", "", "bar")}
	stats := fitCorpus(t, records)
	e := NewEnricher(stats, nil, DefaultWeights())

	src := records[0]
	_ = e.Enrich(src)
	assert.Equal(t, rec("a", "desc", "foo"), src)
}

func TestFormatETags_RoundTripsNumerically(t *testing.T) {
	weights := map[string]float64{
		"a": 1.8061799739838871,
		"b": 0,
		"c": 1.0 / 3.0,
	}
	etags := FormatETags(weights)
	for _, pair := range strings.Split(etags, ",") {
		fields := strings.SplitN(pair, " ", 2)
		require.Len(t, fields, 2)
		parsed, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		assert.Equal(t, weights[fields[0]], parsed, "weight for %q round-trips", fields[0])
	}
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.NoError(t, Weights{}.Validate(), "all-zero weights are legal (every source disabled)")
	assert.Error(t, Weights{Tags: -1, ID: 6, Description: 4}.Validate())
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
