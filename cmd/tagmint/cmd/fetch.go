package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/tagmint/internal/adapters/registry"
)

var (
	fetchPageStart int
	fetchPageLimit int
	fetchForce     bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download catalog pages into the local cache",
	Long:  "Fetches record pages from the catalog endpoint until the catalog ends, caching them in the store and mirroring them as pageN.csv files.",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchPageStart, "page-start", 0, "First page number to fetch")
	fetchCmd.Flags().IntVar(&fetchPageLimit, "page-limit", 0, "Max pages to fetch (0 = until catalog end)")
	fetchCmd.Flags().BoolVar(&fetchForce, "force-refresh-pages", false, "Re-download pages already cached")
}

func runFetch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	client := registry.NewClient(registry.Endpoints[a.Catalog])
	fetched, skipped, err := a.Fetch(cmd.Context(), client, fetchPageStart, fetchPageLimit, fetchForce)
	if err != nil {
		return err
	}

	fmt.Printf("%s⚡ %s catalog%s │ %d pages fetched │ %d cached\n",
		colorBold, a.Catalog, colorReset, fetched, skipped)
	return nil
}
