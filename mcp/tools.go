package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/source"
)

func registerTools(s *server.MCPServer, cat *catalog.Catalog, src source.Source) {
	s.AddTools(buildTools(cat, src)...)
}

// buildTools creates exactly one tool per catalog descriptor. Guide tools
// declare no parameters; the guide name alone selects the content.
func buildTools(cat *catalog.Catalog, src source.Source) []server.ServerTool {
	tools := make([]server.ServerTool, 0, cat.Len())
	for _, d := range cat.All() {
		tools = append(tools, server.ServerTool{
			Tool: mcp.NewTool(d.Name,
				mcp.WithDescription(d.Description),
				mcp.WithTitleAnnotation(d.Title),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: guideHandler(d, src),
		})
	}
	return tools
}

// guideHandler returns the handler for one guide. Every outcome becomes a
// tool result: a fetch failure is reported through an error result, never
// through the handler's error return, so one broken guide cannot take the
// transport down or abort other in-flight calls.
func guideHandler(d catalog.Descriptor, src source.Source) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := src.Read(ctx, d.Path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("guide %s unavailable: %v", d.Name, err)), nil
		}
		return mcp.NewToolResultText(content), nil
	}
}
