package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear cached data for the current endpoint",
	Long:  "Deletes the cached pages, statistics and vectors stored for the selected endpoint. CSV page files under pages/ are left alone.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !wipeForce {
		fmt.Printf("⚠ This will delete all cached %s data. Continue? [y/N] ", a.Catalog)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	if err := a.Store.DeleteCatalog(a.Catalog); err != nil {
		return err
	}

	fmt.Printf("⚡ %s data wiped\n", a.Catalog)
	return nil
}
