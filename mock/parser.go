package mock

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

var _ wikifilm.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of wikifilm.PageParser.
type PageParser struct {
	ParseFn func(ctx context.Context, pageID int) (*wikifilm.ParsedPage, error)
}

func (p *PageParser) Parse(ctx context.Context, pageID int) (*wikifilm.ParsedPage, error) {
	return p.ParseFn(ctx, pageID)
}
