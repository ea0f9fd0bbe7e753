package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/tagmint/internal/ports"
)

// =============================================================================
// Registry HTTP client — page fetching with retries and end-of-catalog stop
// Expectation: JSON pages decode into records, 404 ends iteration cleanly,
// transient 5xx responses are retried.
// =============================================================================

// servePages returns a test server exposing `count` pages.
func servePages(t *testing.T, count int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n int
		if _, err := fmt.Sscanf(r.URL.Path, "/pages/%d.json", &n); err != nil || n >= count {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"number":%d,"records":[{"id":"pkg%d","description":"desc %d","tags":"netcore,cli"}]}`, n, n, n)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckEndpoint(t *testing.T) {
	got, err := CheckEndpoint("PROD")
	require.NoError(t, err)
	assert.Equal(t, PROD, got)

	_, err = CheckEndpoint("staging")
	assert.Error(t, err)
}

func TestGetPage_DecodesRecords(t *testing.T) {
	srv := servePages(t, 1)
	c := NewClient(srv.URL)

	page, err := c.GetPage(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	require.Len(t, page.Records, 1)
	assert.Equal(t, ports.Record{ID: "pkg0", Description: "desc 0", Tags: "netcore,cli"}, page.Records[0])
}

func TestGetPage_NotFound(t *testing.T) {
	srv := servePages(t, 1)
	c := NewClient(srv.URL)

	_, err := c.GetPage(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestGetPage_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"number":0,"records":[]}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	page, err := c.GetPage(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetPage_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.GetPage(context.Background(), 0)
	assert.Error(t, err)
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestPages_StopsAtCatalogEnd(t *testing.T) {
	srv := servePages(t, 3)
	c := NewClient(srv.URL)

	var seen []int
	err := c.Pages(context.Background(), 0, 0, func(p *ports.Page) error {
		seen = append(seen, p.Number)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestPages_StartAndLimit(t *testing.T) {
	srv := servePages(t, 10)
	c := NewClient(srv.URL)

	var seen []int
	err := c.Pages(context.Background(), 4, 2, func(p *ports.Page) error {
		seen = append(seen, p.Number)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, seen)
}
