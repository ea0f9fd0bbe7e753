// Package registry implements a ports.RecordSource over the package catalog
// HTTP API. Pages are fetched as JSON documents at {base}/pages/{n}.json;
// the catalog ends at the first page that returns 404.
//
// Transient failures (5xx, connection errors) are retried a bounded number
// of times with linear backoff before the error is surfaced.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/corey/tagmint/internal/ports"
)

// Known catalog endpoints, selectable by name.
const (
	DEV  = "dev"
	INT  = "int"
	PROD = "prod"
)

// Endpoints maps an endpoint name to its catalog base URL.
var Endpoints = map[string]string{
	DEV:  "https://apidev.pkgcatalog.io/v3/catalog",
	INT:  "https://apiint.pkgcatalog.io/v3/catalog",
	PROD: "https://api.pkgcatalog.io/v3/catalog",
}

// ErrPageNotFound marks the end of the catalog (HTTP 404 on a page).
var ErrPageNotFound = errors.New("catalog page not found")

const (
	requestTimeout = 30 * time.Second
	maxAttempts    = 3
	retryBackoff   = 500 * time.Millisecond
)

// CheckEndpoint validates an endpoint name (case-insensitive) and returns
// its canonical form.
func CheckEndpoint(name string) (string, error) {
	canonical := strings.ToLower(name)
	if _, ok := Endpoints[canonical]; ok {
		return canonical, nil
	}
	known := make([]string, 0, len(Endpoints))
	for k := range Endpoints {
		known = append(known, k)
	}
	sort.Strings(known)
	return "", fmt.Errorf("unknown endpoint %q (expected one of %s)", name, strings.Join(known, "|"))
}

// Client fetches catalog pages over HTTP. It implements ports.RecordSource.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient builds a client for the given catalog base URL (an Endpoints
// value or any compatible URL).
func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: requestTimeout},
	}
}

// GetPage fetches one catalog page. Returns ErrPageNotFound past the end of
// the catalog.
func (c *Client) GetPage(ctx context.Context, number int) (*ports.Page, error) {
	url := fmt.Sprintf("%s/pages/%d.json", c.base, number)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * retryBackoff):
			}
		}

		page, retryable, err := c.getPageOnce(ctx, url, number)
		if err == nil {
			return page, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("page %d after %d attempts: %w", number, maxAttempts, lastErr)
}

// getPageOnce performs a single fetch. The second return value reports
// whether the failure is worth retrying.
func (c *Client) getPageOnce(ctx context.Context, url string, number int) (*ports.Page, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("page %d: %w", number, ErrPageNotFound)
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("page %d: %s", number, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("page %d: %s", number, resp.Status)
	}

	var page ports.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, false, fmt.Errorf("page %d: decode: %w", number, err)
	}
	page.Number = number
	return &page, false, nil
}

// Pages streams catalog pages from `start` until the catalog ends or
// `limit` pages have been delivered (0 = no limit).
func (c *Client) Pages(ctx context.Context, start, limit int, fn func(*ports.Page) error) error {
	for n := start; ; n++ {
		if limit > 0 && n-start >= limit {
			return nil
		}
		page, err := c.GetPage(ctx, n)
		if errors.Is(err, ErrPageNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
	}
}
