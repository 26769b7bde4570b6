package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/config"
	"github.com/docdeck/docdeck/docs"
	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/source"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "docdeck",
	Short: "docdeck - documentation knowledge base as MCP tools",
	Long:  "Serve a curated catalog of documentation guides as individually-invokable MCP tools, over stdio or HTTP.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("source", "", "Content source backend: embedded, dir, http")
	rootCmd.PersistentFlags().String("docs-dir", "", "Directory for the dir source")
	rootCmd.PersistentFlags().String("docs-base-url", "", "Base URL for the http source")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("source"); v != "" {
		cfg.Source = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("docs-dir"); v != "" {
		cfg.DocsDir = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("docs-base-url"); v != "" {
		cfg.DocsBaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	initLogging()
}

// initLogging configures logrus on stderr. Stdout belongs to the stdio
// transport and must stay clean.
func initLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initSources registers the available content source backends. dir and
// http only register when their configuration is present, so selecting an
// unconfigured backend fails at startup.
func initSources() {
	source.Register("embedded", source.NewFSSource(docs.Files))

	if cfg.DocsDir != "" {
		source.Register("dir", source.NewDirSource(cfg.DocsDir))
	}
	if cfg.DocsBaseURL != "" {
		source.Register("http", source.NewHTTPSource(cfg.DocsBaseURL, nil, cfg.MaxRetries))
	}
}

// activeSource registers backends and returns the configured one.
func activeSource() (source.Source, error) {
	initSources()
	return source.Get(cfg.Source)
}

// loadCatalog builds the shipped guide catalog, failing on any invalid
// descriptor before registration can happen.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.New(catalog.Guides())
}
