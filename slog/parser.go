// Package slog decorates prospero services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prospero"
)

// Ensure LoggingParser implements prospero.ArticleParser.
var _ prospero.ArticleParser = (*LoggingParser)(nil)

// LoggingParser wraps an ArticleParser with logging. Besides a summary per
// export file it warns about fragments that could not be parsed and about
// dates that could not be read.
type LoggingParser struct {
	next   prospero.ArticleParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next prospero.ArticleParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseArticle delegates to the wrapped parser and warns about unreadable dates.
func (p *LoggingParser) ParseArticle(fragment string) (*prospero.Article, error) {
	a, err := p.next.ParseArticle(fragment)
	if err == nil {
		p.checkDate(a)
	}
	return a, err
}

// ParseFile delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseFile(ctx context.Context, path string) (result *prospero.ParseResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path, "duration", time.Since(begin), "err", err}
		if result != nil {
			attrs = append(attrs,
				"fragments", result.Fragments,
				"articles", len(result.Articles),
				"skipped", result.SkippedCount(),
				"malformed", len(result.Malformed),
			)
		}
		p.logger.Info("parse export", attrs...)
	}(time.Now())

	result, err = p.next.ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	for _, m := range result.Malformed {
		p.logger.Warn("malformed article",
			"path", path,
			"index", m.Index,
			"source", m.Source,
			"err", m.Err,
		)
	}
	for _, a := range result.Articles {
		p.checkDate(a)
	}
	return result, nil
}

func (p *LoggingParser) checkDate(a *prospero.Article) {
	if a.Date != nil {
		return
	}
	msg := "unreadable date"
	if a.RawDate == "" {
		msg = "missing date"
	}
	p.logger.Warn(msg,
		"source", a.Source,
		"title", a.Title,
		"raw", a.RawDate,
	)
}
