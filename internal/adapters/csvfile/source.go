package csvfile

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/corey/tagmint/internal/ports"
)

// Dir serves a directory of pageN.csv files as a ports.RecordSource.
// Pages are delivered in ascending page-number order regardless of
// directory listing order.
type Dir struct {
	Path string
}

// Pages invokes fn for each page starting at page `start`, for at most
// `limit` pages (0 = no limit).
func (d Dir) Pages(ctx context.Context, start, limit int, fn func(*ports.Page) error) error {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return fmt.Errorf("read pages dir: %w", err)
	}

	var numbers []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if n, ok := PageNumber(entry.Name()); ok && n >= start {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	delivered := 0
	for _, n := range numbers {
		if limit > 0 && delivered >= limit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := ReadPage(PagePath(d.Path, n))
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
		delivered++
	}
	return nil
}
