package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/bloom"
	"github.com/noto-news/noto/compress"
	"github.com/noto-news/noto/domdistiller"
	"github.com/noto-news/noto/extract"
	"github.com/noto-news/noto/filter"
	notofs "github.com/noto-news/noto/fs"
	"github.com/noto-news/noto/gemini"
	notogoquery "github.com/noto-news/noto/goquery"
	"github.com/noto-news/noto/htmltomarkdown"
	notohttp "github.com/noto-news/noto/http"
	"github.com/noto-news/noto/pipeline"
	"github.com/noto-news/noto/readability"
	"github.com/noto-news/noto/rod"
	notoslog "github.com/noto-news/noto/slog"
	"github.com/noto-news/noto/sources"
	"github.com/noto-news/noto/sqlite"
	"github.com/noto-news/noto/trafilatura"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the stats service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	StatsService noto.SourceStatsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("noto"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'noto --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// First word of the resolved command, e.g. "extract <url>" -> "extract".
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	// Always-available collaborators.
	deps.Registry = sources.NewRegistry()
	deps.Compressor = compress.NewCompressor()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Discoverer = notohttp.NewSitemapDiscoverer(nil)

	// The filter uses embeddings only when a Gemini key is present;
	// without one it degrades to keyword heuristics.
	var filterOpts []filter.Option
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		filterOpts = append(filterOpts, filter.WithEmbedder(gemini.NewEmbedder(client)))
		deps.Summarizer = gemini.NewSummarizer(client)
	}
	deps.Filter = filter.NewFilter(filterOpts...)

	var logger *stdslog.Logger
	if cli.Verbose {
		logger = stdslog.New(stdslog.NewTextHandler(stderr, nil))
		deps.Filter = notoslog.NewLoggingFilter(deps.Filter, logger)
	}

	// Extraction stack for commands that fetch pages.
	if cmd == "extract" || cmd == "brief" {
		var fetcher noto.Fetcher = notohttp.NewFetcher()
		if cmd == "extract" && cli.Extract.Browser {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		}
		defer fetcher.Close()
		if logger != nil {
			fetcher = notoslog.NewLoggingFetcher(fetcher, logger)
		}

		deps.Extractor = extract.NewEngine([]noto.ExtractStrategy{
			trafilatura.NewStrategy(fetcher),
			readability.NewStrategy(fetcher),
			domdistiller.NewStrategy(fetcher),
			notogoquery.NewStrategy(fetcher),
		})
		if logger != nil {
			deps.Extractor = notoslog.NewLoggingExtractor(deps.Extractor, logger)
		}
	}

	// Stats persistence for commands that read or write outcomes.
	if cmd == "stats" || cmd == "brief" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set NOTO_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.StatsService = sqlite.NewSourceStatsService(m.DB)
		deps.DB = m.DB
		deps.Stats = m.StatsService
	}

	if cmd == "brief" {
		// The seen filter persists beside the database so repeat runs
		// skip already-delivered stories.
		seenPath := filepath.Join(filepath.Dir(m.DBPath), "seen.bloom")
		seen := bloom.Load(seenPath)

		deps.Writer = notofs.NewBriefWriter(cli.Brief.OutDir)
		deps.Pipeline = &pipeline.Pipeline{
			Registry:    deps.Registry,
			Extractor:   deps.Extractor,
			Compressor:  deps.Compressor,
			Stats:       deps.Stats,
			Seen:        seen,
			Limiter:     pipeline.NewDomainLimiter(1.0),
			Concurrency: cli.Brief.Concurrency,
			Budget:      cli.Brief.Budget,
		}

		err := kongCtx.Run(deps)
		if saveErr := seen.Save(seenPath); saveErr != nil {
			fmt.Fprintf(stderr, "warning: could not save seen filter: %s\n", saveErr)
		}
		return err
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NOTO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "noto.db"
	}
	dir := filepath.Join(home, ".noto")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "noto.db")
}
