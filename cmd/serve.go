package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mcpserver "github.com/docdeck/docdeck/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	src, err := activeSource()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"guides": cat.Len(),
		"source": cfg.Source,
	}).Info("starting docdeck MCP server on stdio")

	if err := mcpserver.Serve(cat, src); err != nil {
		logrus.Fatalf("MCP server error: %v", err)
	}
	return nil
}
