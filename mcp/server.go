package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/source"
)

const (
	serverName    = "docdeck"
	serverVersion = "1.0.0"
)

// Serve starts the MCP stdio server with one tool registered per guide.
// It blocks until the transport is closed; a transport failure is returned
// for the caller to treat as fatal.
func Serve(cat *catalog.Catalog, src source.Source) error {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	registerTools(s, cat, src)

	return server.ServeStdio(s)
}
