package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.PageInfoService = (*PageInfoService)(nil)

// PageInfoService is a mock implementation of wikifilm.PageInfoService.
type PageInfoService struct {
	PageURLFn func(ctx context.Context, pageID int) (string, error)
}

func (p *PageInfoService) PageURL(ctx context.Context, pageID int) (string, error) {
	return p.PageURLFn(ctx, pageID)
}
