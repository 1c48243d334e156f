// Package slog provides logging decorators for wikifilm services using
// the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/reeljournal/wikifilm"
)

// Ensure LoggingResolver implements wikifilm.Resolver.
var _ wikifilm.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   wikifilm.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next wikifilm.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, req wikifilm.SearchRequest, queries []string) (page *wikifilm.ResolvedPage, err error) {
	defer func(begin time.Time) {
		resolved := ""
		pageID := 0
		if page != nil {
			resolved = page.Title
			pageID = page.PageID
		}
		r.logger.Info("article resolution",
			"title", req.Title,
			"queries", len(queries),
			"resolved", resolved,
			"pageId", pageID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, req, queries)
}
