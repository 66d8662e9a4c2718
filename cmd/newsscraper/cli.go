package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsscraper"
	nshttp "github.com/fwojciec/newsscraper/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Articles newsscraper.ArticleService
	Attacher newsscraper.NoteAttacher
	Scraper  nshttp.Scraper
	Server   *nshttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Source  string `env:"NEWSSCRAPER_SOURCE" default:"https://opensource.org/news" help:"Listing page to scrape"`

	MinInterval time.Duration `default:"1s" help:"Minimum time between requests to the source host"`

	Serve    ServeCmd    `cmd:"" help:"Serve the web interface"`
	Scrape   ScrapeCmd   `cmd:"" help:"Replace stored articles with a fresh scrape"`
	Articles ArticlesCmd `cmd:"" help:"List stored articles"`
	Note     NoteCmd     `cmd:"" help:"Attach a note to an article"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host string `default:"" help:"Interface to bind"`
	Port int    `env:"PORT" default:"3000" help:"Port to listen on"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct{}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	Limit int  `short:"n" default:"0" help:"Maximum number of articles to show (0 for all)"`
	Notes bool `help:"Show attached notes"`
}

// NoteCmd is the "note" subcommand.
type NoteCmd struct {
	ID     string   `arg:"" help:"Article ID"`
	Fields []string `arg:"" optional:"" help:"Note fields as key=value pairs"`
}
