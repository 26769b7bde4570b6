package cmd

import (
	"fmt"
	"os"

	"github.com/docdeck/docdeck/internal/catalog"
)

// printTopicsTable prints guides in a human-friendly card layout.
func printTopicsTable(guides []catalog.Descriptor) {
	for i, d := range guides {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, " %d. %s  (%s)\n", i+1, d.Title, d.Name)
		fmt.Fprintf(os.Stdout, "    %s\n", truncate(d.Description, 96))
		fmt.Fprintf(os.Stdout, "    Path: %s\n", d.Path)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
