package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.CategoryChecker = (*CategoryChecker)(nil)

// CategoryChecker is a mock implementation of wikifilm.CategoryChecker.
type CategoryChecker struct {
	IsDisambiguationFn func(ctx context.Context, pageID int) (bool, error)
}

func (c *CategoryChecker) IsDisambiguation(ctx context.Context, pageID int) (bool, error) {
	return c.IsDisambiguationFn(ctx, pageID)
}
