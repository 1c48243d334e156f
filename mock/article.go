package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of wikifilm.ArticleService.
type ArticleService struct {
	LookupFn       func(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.FullResult, error)
	LookupLegacyFn func(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.LegacyResult, error)
}

func (s *ArticleService) Lookup(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.FullResult, error) {
	return s.LookupFn(ctx, req)
}

func (s *ArticleService) LookupLegacy(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.LegacyResult, error) {
	return s.LookupLegacyFn(ctx, req)
}
