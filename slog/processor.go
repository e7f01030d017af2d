package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Ensure LoggingProcessor implements bfscrawl.PageProcessor.
var _ bfscrawl.PageProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a PageProcessor with debug logging.
type LoggingProcessor struct {
	next   bfscrawl.PageProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next bfscrawl.PageProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ExtractContent logs input and output sizes.
func (p *LoggingProcessor) ExtractContent(html string) (content string, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("extract content",
			"html_bytes", len(html),
			"content_bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ExtractContent(html)
}

// ExtractLinks logs how many links were discovered on the page.
func (p *LoggingProcessor) ExtractLinks(html string, baseURL string) (links []string, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("extract links",
			"url", baseURL,
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ExtractLinks(html, baseURL)
}
