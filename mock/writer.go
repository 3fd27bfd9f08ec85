package mock

import (
	"context"

	"github.com/fwojciec/prospero"
)

// Compile-time interface verification.
var (
	_ prospero.ArticleWriter = (*ArticleWriter)(nil)
	_ prospero.Cleaner       = (*Cleaner)(nil)
	_ prospero.Encoder       = (*Encoder)(nil)
)

// ArticleWriter is a mock implementation of prospero.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, a *prospero.Article) (*prospero.FilePair, error)
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, a *prospero.Article) (*prospero.FilePair, error) {
	return w.WriteArticleFn(ctx, a)
}

// Cleaner is a mock implementation of prospero.Cleaner.
type Cleaner struct {
	CleanFn func(b []byte) ([]byte, error)
}

func (c *Cleaner) Clean(b []byte) ([]byte, error) {
	return c.CleanFn(b)
}

// Encoder is a mock implementation of prospero.Encoder.
type Encoder struct {
	EncodeFn func(s string) []byte
}

func (e *Encoder) Encode(s string) []byte {
	return e.EncodeFn(s)
}
