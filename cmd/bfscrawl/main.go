package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/goquery"
	"github.com/fwojciec/bfscrawl/htmltomarkdown"
	bfshttp "github.com/fwojciec/bfscrawl/http"
	"github.com/fwojciec/bfscrawl/readability"
	bfsslog "github.com/fwojciec/bfscrawl/slog"
	"github.com/fwojciec/bfscrawl/trafilatura"
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
	// Database path used when --save is given without --db.
	DBPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bfscrawl"),
		kong.Description("Crawl pages breadth-first from one or more start URLs"),
		kong.Writers(stdout, stderr),
		kong.Vars{"user_agent": bfshttp.DefaultUserAgent},
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no start URL provided. Run 'bfscrawl --help' for usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.DB == "" {
		cli.DB = m.DBPath
	}

	// Wire dependencies
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	httpFetcher := bfshttp.NewFetcher(
		bfshttp.WithTimeout(cli.Timeout),
		bfshttp.WithUserAgent(cli.UserAgent),
		bfshttp.WithMaxBodySize(cli.MaxBody),
	)
	deps.Fetcher = bfsslog.NewLoggingFetcher(httpFetcher, logger)
	defer deps.Fetcher.Close()

	var opts []goquery.Option
	if extractor := newExtractor(cli.MainContent); extractor != nil {
		opts = append(opts, goquery.WithExtractor(extractor))
	}
	processor := goquery.NewProcessor(htmltomarkdown.NewConverter(), opts...)
	deps.Processor = bfsslog.NewLoggingProcessor(processor, logger)

	return cli.Run(deps)
}

// newExtractor returns the main-content extractor selected by name,
// or nil when whole pages should be converted.
func newExtractor(name string) bfscrawl.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("BFSCRAWL_DB"); path != "" {
		return path
	}
	return filepath.Join(xdg.DataHome, "bfscrawl", "bfscrawl.db")
}
