package mock

import (
	"context"

	"github.com/fwojciec/prospero"
)

// Compile-time interface verification.
var (
	_ prospero.Classifier       = (*Classifier)(nil)
	_ prospero.ArticleParser    = (*ArticleParser)(nil)
	_ prospero.PublicationIndex = (*PublicationIndex)(nil)
)

// Classifier is a mock implementation of prospero.Classifier.
type Classifier struct {
	ClassifyFn func(fragment string) prospero.Kind
}

func (c *Classifier) Classify(fragment string) prospero.Kind {
	return c.ClassifyFn(fragment)
}

// ArticleParser is a mock implementation of prospero.ArticleParser.
type ArticleParser struct {
	ParseArticleFn func(fragment string) (*prospero.Article, error)
	ParseFileFn    func(ctx context.Context, path string) (*prospero.ParseResult, error)
}

func (p *ArticleParser) ParseArticle(fragment string) (*prospero.Article, error) {
	return p.ParseArticleFn(fragment)
}

func (p *ArticleParser) ParseFile(ctx context.Context, path string) (*prospero.ParseResult, error) {
	return p.ParseFileFn(ctx, path)
}

// PublicationIndex is a mock implementation of prospero.PublicationIndex.
type PublicationIndex struct {
	LookupFn func(name string) (prospero.Publication, bool)
}

func (i *PublicationIndex) Lookup(name string) (prospero.Publication, bool) {
	return i.LookupFn(name)
}
