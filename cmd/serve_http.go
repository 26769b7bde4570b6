package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/docdeck/docdeck/mcp"
)

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Start MCP HTTP server",
	Long:  "Start the MCP server over streamable HTTP for remote clients.",
	RunE:  runServeHTTP,
}

func init() {
	serveHTTPCmd.Flags().String("port", "", "HTTP port (default from $PORT or 8080)")
	rootCmd.AddCommand(serveHTTPCmd)
}

func runServeHTTP(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	src, err := activeSource()
	if err != nil {
		return err
	}

	port := cfg.HTTPPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}

	return mcpserver.ServeHTTP(cat, src, mcpserver.HTTPOptions{
		Addr:          fmt.Sprintf(":%s", port),
		APIKey:        cfg.APIKey,
		RatePerSecond: cfg.RatePerSecond,
		RateBurst:     cfg.RateBurst,
	})
}
