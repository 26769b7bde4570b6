package catalog

// Guides returns the descriptor list for the shipped knowledge base. Each
// entry maps to a markdown file under docs/. Names are permanent API: add,
// don't rename.
func Guides() []Descriptor {
	return []Descriptor{
		{
			Name:        "guide_getting_started",
			Title:       "Getting Started",
			Description: "Read this when asked how to install docdeck, run it for the first time, or connect it to an MCP client such as Claude Desktop.",
			Path:        "getting-started.md",
		},
		{
			Name:        "guide_configuration",
			Title:       "Configuration",
			Description: "Read this when asked how to configure docdeck: environment variables, flags, .env files, and their precedence.",
			Path:        "configuration.md",
		},
		{
			Name:        "guide_mcp_tools",
			Title:       "MCP Tools",
			Description: "Read this when asked how docdeck's guides map to MCP tools, what a tool call returns, or what error and concurrency guarantees calls have.",
			Path:        "mcp-tools.md",
		},
		{
			Name:        "guide_content_sources",
			Title:       "Content Sources",
			Description: "Read this when asked about serving guide content from the embedded copies, a local directory, or an HTTP docs site, or about writing a custom source.",
			Path:        "content-sources.md",
		},
		{
			Name:        "guide_http_transport",
			Title:       "HTTP Transport",
			Description: "Read this when asked about running docdeck over HTTP: serve-http, bearer authentication, rate limiting, health checks, and deployment.",
			Path:        "http-transport.md",
		},
		{
			Name:        "guide_writing_guides",
			Title:       "Writing Guides",
			Description: "Read this when asked how to add a new guide to the catalog or how to write guide descriptions and bodies that route well.",
			Path:        "writing-guides.md",
		},
		{
			Name:        "guide_troubleshooting",
			Title:       "Troubleshooting",
			Description: "Read this when docdeck fails to start, a tool call returns an error, a client shows no tools, or guide content looks stale.",
			Path:        "troubleshooting.md",
		},
		{
			Name:        "guide_faq",
			Title:       "FAQ",
			Description: "Read this for design questions: why one tool per guide, why no arguments, why no search or caching, and when to prefer stdio over HTTP.",
			Path:        "faq.md",
		},
	}
}
