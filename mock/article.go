package mock

import (
	"context"

	"github.com/skarvsladd/wikisite"
)

var _ wikisite.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of wikisite.ArticleSource.
type ArticleSource struct {
	FetchArticleFn func(ctx context.Context, url string) (*wikisite.Article, error)
}

func (s *ArticleSource) FetchArticle(ctx context.Context, url string) (*wikisite.Article, error) {
	return s.FetchArticleFn(ctx, url)
}

var _ wikisite.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of wikisite.Cleaner.
type Cleaner struct {
	CleanFn func(ctx context.Context, text string) (string, error)
}

func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	return c.CleanFn(ctx, text)
}
