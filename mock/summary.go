package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of wikifilm.SummaryService.
type SummaryService struct {
	SummaryFn func(ctx context.Context, pageID int) (string, error)
}

func (s *SummaryService) Summary(ctx context.Context, pageID int) (string, error) {
	return s.SummaryFn(ctx, pageID)
}
