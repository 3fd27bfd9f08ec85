package mock

import (
	"context"

	"github.com/fwojciec/prospero"
)

var _ prospero.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of prospero.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, entry *prospero.ArticleEntry) error
	FindArticleByIDFn func(ctx context.Context, id string) (*prospero.ArticleEntry, error)
	FindArticlesFn    func(ctx context.Context, filter prospero.ArticleFilter) ([]*prospero.ArticleEntry, error)
	HasContentHashFn  func(ctx context.Context, hash string) (bool, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, entry *prospero.ArticleEntry) error {
	return s.CreateArticleFn(ctx, entry)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*prospero.ArticleEntry, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter prospero.ArticleFilter) ([]*prospero.ArticleEntry, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) HasContentHash(ctx context.Context, hash string) (bool, error) {
	return s.HasContentHashFn(ctx, hash)
}
