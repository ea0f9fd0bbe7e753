package app

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/tagmint/internal/adapters/bbolt"
	"github.com/corey/tagmint/internal/adapters/csvfile"
	"github.com/corey/tagmint/internal/adapters/dictionary"
	"github.com/corey/tagmint/internal/domain/tagger"
	"github.com/corey/tagmint/internal/ports"
)

// =============================================================================
// Pipeline — fit + enrich over real adapters (CSV source, embedded
// dictionary, Aho-Corasick matcher, bbolt persistence)
// =============================================================================

func newTestStore(t *testing.T) *bbolt.Store {
	t.Helper()
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPipeline_EndToEnd(t *testing.T) {
	// Two-record catalog. idf(netcore)=0 (tagged everywhere), idf(cli)=
	// log10(2). Both are jargon to the embedded dictionary, so "cli" is
	// re-matched in R1's description: 2*log10(2) + 4*log10(2).
	dir := t.TempDir()
	require.NoError(t, csvfile.WritePage(dir, &ports.Page{Number: 0, Records: []ports.Record{
		{ID: "Foo.Bar", Description: "a netcore cli tool", Tags: "netcore,cli"},
		{ID: "Baz", Description: "baz thing", Tags: "netcore"},
	}}))

	store := newTestStore(t)
	p := &Pipeline{
		Source:  csvfile.Dir{Path: dir},
		Dict:    dictionary.Embedded(),
		Weights: tagger.Weights{Tags: 2, ID: 6, Description: 4},
		Store:   store,
		Catalog: "prod",
	}
	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.N)
	assert.Equal(t, 2, res.Stats.VocabSize())
	assert.Equal(t, []string{"cli", "netcore"}, res.Stats.Filtered)

	require.Len(t, res.Pages, 1)
	require.Len(t, res.Pages[0].Records, 2)

	cliWeight := strconv.FormatFloat(6*math.Log10(2), 'g', -1, 64)
	assert.Equal(t, fmt.Sprintf("cli %s,netcore 0", cliWeight), res.Pages[0].Records[0].ETags)
	assert.Equal(t, "netcore 0", res.Pages[0].Records[1].ETags)

	// Statistics and vectors were persisted.
	stats, err := store.LoadStatistics("prod")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, res.Stats.IDF, stats.IDF)

	vectors, err := store.LoadVectors("prod")
	require.NoError(t, err)
	assert.Equal(t, res.Vectors(), vectors)
}

func TestPipeline_EmptyCorpus(t *testing.T) {
	p := &Pipeline{
		Source: csvfile.Dir{Path: t.TempDir()},
		Dict:   dictionary.Embedded(),
	}
	_, err := p.Run(context.Background())
	assert.ErrorIs(t, err, tagger.ErrEmptyCorpus)
}

func TestPipeline_DictionaryWordsNotMined(t *testing.T) {
	// "tool" is a real word: it stays in the vocabulary (declared tags
	// still score it) but is excluded from text mining.
	dir := t.TempDir()
	require.NoError(t, csvfile.WritePage(dir, &ports.Page{Number: 0, Records: []ports.Record{
		{ID: "A", Description: "a tool for things", Tags: "tool"},
		{ID: "B", Description: "a tool for other things", Tags: "cli"},
	}}))

	p := &Pipeline{
		Source:  csvfile.Dir{Path: dir},
		Dict:    dictionary.Embedded(),
		Weights: tagger.DefaultWeights(),
	}
	res, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"cli"}, res.Stats.Filtered)

	// Both descriptions mention "tool" but only the declared tag scores it.
	w := strconv.FormatFloat(2*math.Log10(2), 'g', -1, 64)
	assert.Equal(t, fmt.Sprintf("tool %s", w), res.Pages[0].Records[0].ETags)
	assert.Equal(t, fmt.Sprintf("cli %s", w), res.Pages[0].Records[1].ETags)
}

func TestStoreSource_DeliversCachedPages(t *testing.T) {
	store := newTestStore(t)
	for _, n := range []int{2, 0} {
		require.NoError(t, store.SavePage("prod", &ports.Page{Number: n, Records: []ports.Record{
			{ID: fmt.Sprintf("pkg%d", n), Description: "", Tags: "x"},
		}}))
	}

	var seen []int
	src := StoreSource{Store: store, Catalog: "prod"}
	err := src.Pages(context.Background(), 0, 0, func(p *ports.Page) error {
		seen = append(seen, p.Number)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, seen)
}

func TestStoreSource_StartAndLimit(t *testing.T) {
	store := newTestStore(t)
	for n := 0; n < 5; n++ {
		require.NoError(t, store.SavePage("prod", &ports.Page{Number: n}))
	}

	var seen []int
	src := StoreSource{Store: store, Catalog: "prod"}
	err := src.Pages(context.Background(), 1, 2, func(p *ports.Page) error {
		seen = append(seen, p.Number)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}
