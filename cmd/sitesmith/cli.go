package main

import (
	"context"
	"io"

	"sitesmith"
	"sitesmith/fs"
	"sitesmith/research"
	"sitesmith/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB       *sqlite.DB
	Store    sitesmith.KnowledgeStore
	Research *research.Service
	Scraper  sitesmith.SiteScraper
	Asker    sitesmith.Asker
	Writer   sitesmith.ReportWriter
	Runs     sitesmith.RunService
	Exporter *fs.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Research ResearchCmd `cmd:"" help:"Research a website and build its knowledge document"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about a researched website"`
	Report   ReportCmd   `cmd:"" help:"Write a research report about a researched website"`
	Cached   CachedCmd   `cmd:"" help:"Check whether a website's knowledge is cached"`
	Runs     RunsCmd     `cmd:"" help:"List research run history"`
	Export   ExportCmd   `cmd:"" help:"Scrape a website and export its pages as markdown"`
}

// ResearchCmd is the "research" subcommand.
type ResearchCmd struct {
	URL     string `arg:"" help:"Website URL"`
	Force   bool   `short:"f" help:"Re-research even if cached"`
	Context bool   `short:"c" help:"Print the rendered knowledge context"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Website URL"`
	Question string `arg:"" help:"Question to ask about the website"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	URL string `arg:"" help:"Website URL"`
}

// CachedCmd is the "cached" subcommand.
type CachedCmd struct {
	URL string `arg:"" help:"Website URL"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	URL   string `help:"Filter runs by URL"`
	Limit int    `default:"20" help:"Maximum runs to list"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	URL string `arg:"" help:"Website URL"`
	Dir string `short:"d" default:"export" help:"Export directory"`
}
