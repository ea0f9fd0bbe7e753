package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/tagmint/internal/adapters/csvfile"
	"github.com/corey/tagmint/internal/app"
)

var (
	enrichWorkers    int
	enrichOutDir     string
	enrichDumpPath   string
	enrichNoDump     bool
	enrichWithWeight bool
	enrichWeightTags float64
	enrichWeightID   float64
	enrichWeightDesc float64
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fit and enrich every cached record",
	Long:  "Runs the full pipeline: fits IDF statistics, then scores each record's declared tags and mines its id and description for jargon terms. Writes the id → etags dump to .tagmint/etags.log.",
	RunE:  runEnrich,
}

func init() {
	f := enrichCmd.Flags()
	f.IntVar(&enrichWorkers, "workers", 0, "Enrichment workers (0 = one per CPU)")
	f.StringVar(&enrichOutDir, "out", "", "Write enriched pageN.csv files to this directory")
	f.StringVar(&enrichDumpPath, "tag-dump", "", "Tag dump path (default .tagmint/etags.log)")
	f.BoolVar(&enrichNoDump, "no-tag-dump", false, "Skip writing the tag dump")
	f.BoolVar(&enrichWithWeight, "include-weights", false, "Include weights in the tag dump")
	f.Float64Var(&enrichWeightTags, "weight-tags", 0, "Override the declared-tags weight")
	f.Float64Var(&enrichWeightID, "weight-id", 0, "Override the id weight")
	f.Float64Var(&enrichWeightDesc, "weight-description", 0, "Override the description weight")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if cmd.Flags().Changed("workers") {
		a.Config.Workers = enrichWorkers
	}
	if cmd.Flags().Changed("weight-tags") {
		a.Config.Weights.Tags = enrichWeightTags
	}
	if cmd.Flags().Changed("weight-id") {
		a.Config.Weights.ID = enrichWeightID
	}
	if cmd.Flags().Changed("weight-description") {
		a.Config.Weights.Description = enrichWeightDesc
	}
	if err := a.Config.Weights.Validate(); err != nil {
		return err
	}

	res, err := a.RunPipeline(cmd.Context())
	if err != nil {
		return err
	}

	if enrichOutDir != "" {
		if err := os.MkdirAll(enrichOutDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", enrichOutDir, err)
		}
		for _, page := range res.Pages {
			if err := csvfile.WriteEnrichedPage(enrichOutDir, page.Number, page.Records); err != nil {
				return err
			}
		}
	}

	if !enrichNoDump {
		dumpPath := enrichDumpPath
		if dumpPath == "" {
			dumpPath = a.Paths.ETagsLog
		}
		if err := writeTagDump(dumpPath, res, enrichWithWeight); err != nil {
			return err
		}
	}

	fmt.Print(formatEnrichResult(res))
	return nil
}

// writeTagDump writes one "id<TAB>etags" line per record, sorted by id.
// Without includeWeights the weights are stripped, leaving the sorted terms.
func writeTagDump(path string, res *app.Result, includeWeights bool) error {
	vectors := res.Vectors()
	ids := make([]string, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		etags := vectors[id]
		if !includeWeights {
			etags = stripWeights(etags)
		}
		fmt.Fprintf(&sb, "%s\t%s\n", id, etags)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write tag dump: %w", err)
	}
	return nil
}

func stripWeights(etags string) string {
	if etags == "" {
		return ""
	}
	entries := strings.Split(etags, ",")
	terms := make([]string, 0, len(entries))
	for _, entry := range entries {
		term, _, _ := strings.Cut(entry, " ")
		terms = append(terms, term)
	}
	return strings.Join(terms, ",")
}
