package cmd

import (
	"fmt"
	"os"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <guide>",
	Short: "Print one guide from the active source",
	Long:  "Fetch a guide through the configured content source and render it for the terminal.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("raw", false, "Print the guide verbatim, without terminal rendering")
	showCmd.Flags().Int("width", 100, "Render width for markdown output")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	src, err := activeSource()
	if err != nil {
		return err
	}

	name := args[0]
	d, ok := cat.Get(name)
	if !ok {
		return fmt.Errorf("unknown guide %q (run 'docdeck topics' to list them)", name)
	}

	content, err := src.Read(cmd.Context(), d.Path)
	if err != nil {
		return fmt.Errorf("read guide %s: %w", name, err)
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprint(os.Stdout, content)
		return nil
	}

	width, _ := cmd.Flags().GetInt("width")
	fmt.Fprintln(os.Stdout, string(markdown.Render(content, width, 2)))
	return nil
}
