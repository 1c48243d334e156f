package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of wikifilm.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]wikifilm.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]wikifilm.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
