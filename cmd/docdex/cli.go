package main

import (
	"context"
	"io"
	"time"

	"docdex"
	"docdex/crawl"
	"docdex/index"
	"docdex/search"
	"docdex/sqlite"

	"github.com/rs/zerolog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    zerolog.Logger
	DB        *sqlite.DB
	Documents docdex.DocumentService
	Words     docdex.WordStore
	Indexer   *index.Indexer
	Engine    *search.Engine
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	ResetStore   ResetStoreCmd   `cmd:"" help:"Drop and recreate the document store and word index"`
	RebuildIndex RebuildIndexCmd `cmd:"" help:"Rebuild the word index from stored documents"`
	Crawl        CrawlCmd        `cmd:"" help:"Crawl documentation reachable from a seed URL"`
	Query        QueryCmd        `cmd:"" help:"Search indexed documents (all terms must match)"`
}

// ResetStoreCmd is the "reset-store" subcommand.
type ResetStoreCmd struct{}

// RebuildIndexCmd is the "rebuild-index" subcommand.
type RebuildIndexCmd struct{}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	SeedURL  string        `arg:"" name:"seed-url" help:"Seed URL; its prefix bounds the crawl scope"`
	RPS      float64       `default:"1" help:"Per-domain request rate limit"`
	Timeout  time.Duration `default:"10s" help:"Fetch timeout per page"`
	MaxPages int           `name:"max-pages" default:"10000" help:"Upper bound on fetched pages"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Terms []string `arg:"" name:"term" help:"Search terms (AND semantics)"`
}
