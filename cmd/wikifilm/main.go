package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/reeljournal/wikifilm"
	wikiquery "github.com/reeljournal/wikifilm/goquery"
	"github.com/reeljournal/wikifilm/lookup"
	"github.com/reeljournal/wikifilm/mediawiki"
	"github.com/reeljournal/wikifilm/resolve"
	wikislog "github.com/reeljournal/wikifilm/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Articles is the lookup service. Set for end-to-end testing; left
	// nil, Run wires the real MediaWiki-backed pipeline from CLI flags.
	Articles wikifilm.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikifilm"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikifilm --help' to see available commands")
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

	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

	// Wire the lookup pipeline unless a service was injected for testing.
	deps.Articles = m.Articles
	if deps.Articles == nil {
		client := mediawiki.NewClient(
			mediawiki.WithBaseURL(cli.APIURL),
			mediawiki.WithTimeout(cli.Timeout),
			mediawiki.WithRateLimit(cli.RPS),
		)

		resolver := wikislog.NewLoggingResolver(&resolve.Resolver{
			Searcher:   client,
			Categories: client,
		}, deps.Logger)

		deps.Articles = wikislog.NewLoggingArticleService(&lookup.Service{
			Resolver:  resolver,
			Parser:    client,
			PageInfo:  client,
			Summaries: client,
			Extractor: wikiquery.NewExtractor(),
		}, deps.Logger)
	}

	return kongCtx.Run(deps)
}
