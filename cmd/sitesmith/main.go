package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"sitesmith/crawl"
	"sitesmith/fs"
	"sitesmith/gemini"
	"sitesmith/goquery"
	"sitesmith/htmltomarkdown"
	sshttp "sitesmith/http"
	"sitesmith/research"
	sslog "sitesmith/slog"
	"sitesmith/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Paths. Set before calling Run().
	DBPath       string
	KnowledgeDir string

	// SQLite database used for run history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		KnowledgeDir: defaultKnowledgeDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitesmith"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitesmith --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITESMITH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Runs = sqlite.NewRunService(m.DB)
	deps.Store = sslog.NewLoggingKnowledgeStore(fs.NewKnowledgeStore(m.KnowledgeDir), logger)

	scraper := crawl.NewScraper(
		sslog.NewLoggingFetcher(sshttp.NewFetcher(), logger),
		goquery.NewExtractor(),
		goquery.NewDiscoverer(),
		sslog.NewLoggingRobotsService(sshttp.NewRobotsService(), logger),
	)
	scraper.Sitemaps = sshttp.NewSitemapSource()
	deps.Scraper = sslog.NewLoggingScraper(scraper, logger)

	// Only commands that talk to the model need an API key.
	if cmd == "research" || cmd == "ask" || cmd == "report" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client)
		deps.Writer = gemini.NewReportWriter(client)
		deps.Research = &research.Service{
			Scraper:  deps.Scraper,
			Store:    deps.Store,
			Gaps:     gemini.NewGapAnalyzer(client),
			Planner:  gemini.NewSearchPlanner(client),
			Searcher: gemini.NewWebSearcher(client),
			Names:    gemini.NewNameExtractor(client),
			Runs:     deps.Runs,
		}
	}

	if cmd == "export" {
		deps.Exporter = fs.NewExporter(cli.Export.Dir, htmltomarkdown.NewConverter())
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SITESMITH_DB"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "sitesmith.db")
}

func defaultKnowledgeDir() string {
	if dir := os.Getenv("SITESMITH_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(configDir(), "knowledge")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".sitesmith")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}
