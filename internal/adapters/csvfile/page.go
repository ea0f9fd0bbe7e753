// Package csvfile reads and writes catalog record pages as pageN.csv files.
// Input pages carry the id, description and tags columns; enriched output
// appends the etags column. It also serves a directory of page files as a
// ports.RecordSource for the pipeline.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/corey/tagmint/internal/domain/tagger"
	"github.com/corey/tagmint/internal/ports"
)

const (
	pagePrefix = "page"
	pageSuffix = ".csv"
)

// requiredColumns are the record fields every input page must expose.
// tags may be empty per row, but the column itself must exist.
var requiredColumns = []string{"id", "description", "tags"}

// PagePath returns the conventional path for a page file: dir/pageN.csv.
func PagePath(dir string, number int) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d%s", pagePrefix, number, pageSuffix))
}

// PageNumber extracts N from a pageN.csv base name.
func PageNumber(name string) (int, bool) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, pagePrefix) || !strings.HasSuffix(base, pageSuffix) {
		return 0, false
	}
	n, err := strconv.Atoi(base[len(pagePrefix) : len(base)-len(pageSuffix)])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ReadPage parses one page file. The header row names the columns; order is
// free and extra columns are ignored. A missing required column fails with
// *tagger.FieldError rather than coercing absent fields to empty strings.
func ReadPage(path string) (*ports.Page, error) {
	number, ok := PageNumber(path)
	if !ok {
		return nil, fmt.Errorf("not a page file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse %s: missing header row", filepath.Base(path))
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &tagger.FieldError{Field: name}
		}
	}

	page := &ports.Page{Number: number}
	for _, row := range rows[1:] {
		page.Records = append(page.Records, ports.Record{
			ID:          row[col["id"]],
			Description: row[col["description"]],
			Tags:        row[col["tags"]],
		})
	}
	return page, nil
}

// WritePage writes raw records to dir/pageN.csv, overwriting any prior file.
func WritePage(dir string, page *ports.Page) error {
	rows := make([][]string, 0, len(page.Records)+1)
	rows = append(rows, requiredColumns)
	for _, rec := range page.Records {
		rows = append(rows, []string{rec.ID, rec.Description, rec.Tags})
	}
	return writeRows(PagePath(dir, page.Number), rows)
}

// WriteEnrichedPage writes enriched records with the etags column appended.
func WriteEnrichedPage(dir string, number int, records []ports.EnrichedRecord) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append(append([]string{}, requiredColumns...), "etags"))
	for _, rec := range records {
		rows = append(rows, []string{rec.ID, rec.Description, rec.Tags, rec.ETags})
	}
	return writeRows(PagePath(dir, number), rows)
}

func writeRows(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write page: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write page: %w", err)
	}
	return f.Close()
}
