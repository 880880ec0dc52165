package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"docdex/crawl"
	"docdex/deflate"
	"docdex/goquery"
	"docdex/htmltomarkdown"
	dochttp "docdex/http"
	"docdex/index"
	"docdex/search"
	"docdex/sqlite"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		os.Exit(ee.Code)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// ExitError carries a specific process exit code for query outcomes whose
// message has already been printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the SQLite service implementations.
	DB *sqlite.DB
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
		kong.Name("docdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docdex --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	deps.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().Logger()

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Documents = sqlite.NewDocumentService(m.DB)
	deps.Words = sqlite.NewWordStore(m.DB)
	deps.Indexer = index.NewIndexer(deps.Words)

	codec := deflate.NewCodec()
	deps.Engine = &search.Engine{
		Documents: deps.Documents,
		Words:     deps.Words,
		Codec:     codec,
	}

	if kongCtx.Command() == "crawl <seed-url>" {
		fetcher := dochttp.NewFetcher(dochttp.WithTimeout(cli.Crawl.Timeout))
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Codec:     codec,
			Documents: deps.Documents,
			Indexer:   deps.Indexer,
			Limiter:   crawl.NewDomainLimiter(cli.Crawl.RPS),
			Logger:    deps.Logger,
			MaxPages:  cli.Crawl.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docdex.db"
	}
	dir := filepath.Join(home, ".docdex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docdex.db")
}
