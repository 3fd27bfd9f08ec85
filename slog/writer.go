package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prospero"
)

// Ensure LoggingWriter implements prospero.ArticleWriter.
var _ prospero.ArticleWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps an ArticleWriter with logging.
type LoggingWriter struct {
	next   prospero.ArticleWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next prospero.ArticleWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteArticle delegates to the wrapped writer and logs the written pair.
func (w *LoggingWriter) WriteArticle(ctx context.Context, a *prospero.Article) (pair *prospero.FilePair, err error) {
	defer func(begin time.Time) {
		attrs := []any{"source", a.Source, "duration", time.Since(begin), "err", err}
		if pair != nil {
			attrs = append(attrs, "stem", pair.Stem, "bytes", pair.TextBytes+pair.CtxBytes)
		}
		w.logger.Debug("write article", attrs...)
	}(time.Now())

	pair, err = w.next.WriteArticle(ctx, a)
	if err == nil && pair.Publication.Prefix == prospero.UnknownPrefix {
		w.logger.Warn("unknown publication", "source", a.Source, "stem", pair.Stem)
	}
	return pair, err
}
