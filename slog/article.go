package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/reeljournal/wikifilm"
)

// Ensure LoggingArticleService implements wikifilm.ArticleService.
var _ wikifilm.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with per-lookup logging.
type LoggingArticleService struct {
	next   wikifilm.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next wikifilm.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// Lookup delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) Lookup(ctx context.Context, req wikifilm.SearchRequest) (result *wikifilm.FullResult, err error) {
	defer func(begin time.Time) {
		sections := 0
		if result != nil {
			sections = len(result.Sections)
		}
		s.logger.Info("full lookup",
			"title", req.Title,
			"year", req.Year,
			"mediaType", req.MediaType,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Lookup(ctx, req)
}

// LookupLegacy delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) LookupLegacy(ctx context.Context, req wikifilm.SearchRequest) (result *wikifilm.LegacyResult, err error) {
	defer func(begin time.Time) {
		sections := 0
		if result != nil {
			sections = len(result.Sections)
		}
		s.logger.Info("legacy lookup",
			"title", req.Title,
			"year", req.Year,
			"mediaType", req.MediaType,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LookupLegacy(ctx, req)
}
