package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/tagmint/internal/app"
	"github.com/corey/tagmint/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// formatStatistics formats fitted corpus statistics for terminal display.
//
//	⚡ fitted 1204 records │ Xms
//	  Vocabulary:  342 terms
//	  Mined:       118 terms (not in dictionary)
func formatStatistics(stats *ports.Statistics, pageCount int, elapsed time.Duration) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ fitted %d records%s │ %d pages │ %s\n",
		colorBold, stats.N, colorReset, pageCount, elapsed.Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("  Vocabulary:  %d terms\n", stats.VocabSize()))
	sb.WriteString(fmt.Sprintf("  Mined:       %d terms (not in dictionary)\n", len(stats.Filtered)))
	return sb.String()
}

// formatEnrichResult formats a pipeline run for terminal display.
func formatEnrichResult(res *app.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ enriched %d records%s │ %d pages │ %s\n",
		colorBold, res.RecordCount, colorReset, len(res.Pages), res.Elapsed.Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("  Vocabulary:  %d terms\n", res.Stats.VocabSize()))
	sb.WriteString(fmt.Sprintf("  Mined:       %d terms\n", len(res.Stats.Filtered)))
	return sb.String()
}
