package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the guides in the catalog",
	RunE:  runTopics,
}

func init() {
	topicsCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(cat.All(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode topics: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(os.Stdout, "%d guides in the catalog:\n\n", cat.Len())
	printTopicsTable(cat.All())
	return nil
}
