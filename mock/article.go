package mock

import (
	"context"

	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsscraper.ArticleService.
type ArticleService struct {
	CreateArticleFn     func(ctx context.Context, article *newsscraper.Article) error
	FindArticleByIDFn   func(ctx context.Context, id string) (*newsscraper.Article, error)
	FindArticlesFn      func(ctx context.Context, filter newsscraper.ArticleFilter) ([]*newsscraper.Article, error)
	UpdateArticleNoteFn func(ctx context.Context, id string, noteID string) (*newsscraper.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsscraper.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsscraper.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsscraper.ArticleFilter) ([]*newsscraper.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) UpdateArticleNote(ctx context.Context, id string, noteID string) (*newsscraper.Article, error) {
	return s.UpdateArticleNoteFn(ctx, id, noteID)
}
