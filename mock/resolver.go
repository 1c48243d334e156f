package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of wikifilm.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, req wikifilm.SearchRequest, queries []string) (*wikifilm.ResolvedPage, error)
}

func (r *Resolver) Resolve(ctx context.Context, req wikifilm.SearchRequest, queries []string) (*wikifilm.ResolvedPage, error) {
	return r.ResolveFn(ctx, req, queries)
}
