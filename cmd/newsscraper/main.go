package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsscraper"
	"github.com/fwojciec/newsscraper/annotate"
	"github.com/fwojciec/newsscraper/goquery"
	nshttp "github.com/fwojciec/newsscraper/http"
	"github.com/fwojciec/newsscraper/scrape"
	nsslog "github.com/fwojciec/newsscraper/slog"
	"github.com/fwojciec/newsscraper/sqlite"
	"github.com/lmittmann/tint"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService newsscraper.ArticleService
	NoteService    newsscraper.NoteService
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
		kong.Name("newsscraper"),
		kong.Description("Scrape news articles and attach notes to them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsscraper --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    stderr != os.Stderr,
	}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSSCRAPER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.NoteService = sqlite.NewNoteService(m.DB)
	deps.Articles = m.ArticleService

	var attacher newsscraper.NoteAttacher = &annotate.Annotator{
		Articles: m.ArticleService,
		Notes:    m.NoteService,
	}
	if cli.Verbose {
		attacher = nsslog.NewLoggingNoteAttacher(attacher, deps.Logger)
	}
	deps.Attacher = attacher

	if cmd == "scrape" || cmd == "serve" {
		var fetcher newsscraper.Fetcher = nshttp.NewFetcher()
		if cli.Verbose {
			fetcher = nsslog.NewLoggingFetcher(fetcher, deps.Logger)
		}
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			SourceURL:   cli.Source,
			Fetcher:     fetcher,
			Extractor:   goquery.NewArticleExtractor(cli.Source),
			Articles:    m.ArticleService,
			Store:       m.DB,
			RateLimiter: scrape.NewDomainLimiter(cli.MinInterval),
			Logger:      deps.Logger,
			RetryDelays: scrape.DefaultRetryDelays(),
		}
	}

	if cmd == "serve" {
		server := nshttp.NewServer()
		server.Articles = m.ArticleService
		server.Attacher = deps.Attacher
		server.Scraper = deps.Scraper
		server.Logger = deps.Logger
		deps.Server = server
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSSCRAPER_DB"); path != "" {
		return path
	}
	return "newsscraper.db"
}
