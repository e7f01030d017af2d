package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   bfscrawl.Fetcher
	Processor bfscrawl.PageProcessor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	MaxDepth    int           `short:"d" default:"2" env:"BFSCRAWL_MAX_DEPTH" help:"Maximum link depth from the start URL"`
	MaxPages    int           `short:"n" default:"1" env:"BFSCRAWL_MAX_PAGES" help:"Maximum number of pages recorded per start URL"`
	OmitFailed  bool          `env:"BFSCRAWL_OMIT_FAILED" help:"Leave pages whose fetch failed out of the results"`
	Timeout     time.Duration `short:"t" default:"10s" env:"BFSCRAWL_TIMEOUT" help:"Fetch timeout per page"`
	UserAgent   string        `default:"${user_agent}" env:"BFSCRAWL_USER_AGENT" help:"User-Agent header sent with requests"`
	MaxBody     int64         `default:"5242880" env:"BFSCRAWL_MAX_BODY" help:"Maximum response body size in bytes"`
	MainContent string        `default:"none" enum:"none,trafilatura,readability" env:"BFSCRAWL_MAIN_CONTENT" help:"Narrow pages to their main content before conversion (none, trafilatura, readability)"`
	Format      string        `short:"f" default:"text" enum:"text,json,urls" env:"BFSCRAWL_FORMAT" help:"Output format (text, json, urls)"`
	Out         string        `short:"o" type:"path" env:"BFSCRAWL_OUT" help:"Write pages as markdown files into this directory (replaced on each run)"`
	Save        bool          `env:"BFSCRAWL_SAVE" help:"Record crawled pages in the SQLite database"`
	DB          string        `type:"path" help:"SQLite database path (default: XDG data home, or BFSCRAWL_DB)"`
	Concurrency int           `short:"c" default:"1" env:"BFSCRAWL_CONCURRENCY" help:"Number of start URLs crawled at once"`
	Verbose     bool          `short:"v" env:"BFSCRAWL_VERBOSE" help:"Log debug details to stderr"`
	URLs        []string      `arg:"" name:"url" required:"" help:"Start URLs to crawl"`
}
