package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/reeljournal/wikifilm"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Articles wikifilm.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL  string        `name:"api-url" env:"WIKIFILM_API_URL" default:"https://en.wikipedia.org/w/api.php" help:"MediaWiki API endpoint"`
	RPS     float64       `name:"rps" default:"10" help:"Upstream request rate limit (requests per second)"`
	Timeout time.Duration `name:"timeout" default:"15s" help:"Upstream request timeout"`

	Serve  ServeCmd  `cmd:"" help:"Run the article lookup HTTP server"`
	Lookup LookupCmd `cmd:"" help:"Look up a single article and print the result as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"WIKIFILM_ADDR" default:":8787" help:"HTTP bind address"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Title     string `arg:"" help:"Film or TV series title"`
	Year      string `help:"Release year used to narrow the search"`
	MediaType string `name:"media-type" enum:"movie,tv" default:"movie" help:"Type of production (movie or tv)"`
	Full      bool   `help:"Return the full structured article instead of legacy sections"`
}
