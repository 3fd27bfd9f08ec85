package slog

import (
	"log/slog"

	"github.com/fwojciec/prospero"
)

// Ensure LoggingClassifier implements prospero.Classifier.
var _ prospero.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging of excluded fragments.
type LoggingClassifier struct {
	next   prospero.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next prospero.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs stubs.
func (c *LoggingClassifier) Classify(fragment string) prospero.Kind {
	kind := c.next.Classify(fragment)
	if kind != prospero.KindPlain {
		c.logger.Debug("skip fragment", "kind", string(kind), "size", len(fragment))
	}
	return kind
}
