package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var vocabFilteredOnly bool

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the fitted vocabulary and IDF weights",
	RunE:  runVocab,
}

func init() {
	vocabCmd.Flags().BoolVar(&vocabFilteredOnly, "filtered", false, "Only terms mined from text (not in dictionary)")
}

func runVocab(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.Store.LoadStatistics(a.Catalog)
	if err != nil {
		return err
	}
	if stats == nil {
		return fmt.Errorf("no statistics for %s. Run: tagmint fit", a.Catalog)
	}

	mined := make(map[string]bool, len(stats.Filtered))
	for _, term := range stats.Filtered {
		mined[term] = true
	}

	terms := make([]string, 0, len(stats.IDF))
	for term := range stats.IDF {
		if vocabFilteredOnly && !mined[term] {
			continue
		}
		terms = append(terms, term)
	}
	sort.Strings(terms)

	fmt.Printf("%s⚡ %d terms%s │ %d records\n", colorBold, len(terms), colorReset, stats.N)
	for _, term := range terms {
		marker := ""
		if mined[term] {
			marker = fmt.Sprintf("  %smined%s", colorGreen, colorReset)
		}
		fmt.Printf("  %s%s%s  %s%.6g%s%s\n", colorCyan, term, colorReset, colorGray, stats.IDF[term], colorReset, marker)
	}
	return nil
}
