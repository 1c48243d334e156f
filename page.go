package wikifilm

import "context"

// SearchResult is a single hit from the Wikipedia full-text search API.
type SearchResult struct {
	Title   string
	PageID  int
	Snippet string
}

// ResolvedPage is the single article chosen by the resolver and handed to
// the content extractor. At most one exists per request.
type ResolvedPage struct {
	Title  string
	PageID int
}

// ParsedPage is the full parse output for an article: raw rendered HTML,
// section metadata, and image file names.
type ParsedPage struct {
	Title    string
	PageID   int
	HTML     string
	Sections []Section
	Images   []string
}

// Searcher performs full-text searches against Wikipedia.
type Searcher interface {
	// Search returns up to limit hits for the query, in relevance order.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// CategoryChecker answers whether a page is a disambiguation page, based
// on its category memberships.
type CategoryChecker interface {
	IsDisambiguation(ctx context.Context, pageID int) (bool, error)
}

// PageParser fetches the full parse output for a page.
type PageParser interface {
	Parse(ctx context.Context, pageID int) (*ParsedPage, error)
}

// PageInfoService resolves the canonical URL of a page.
type PageInfoService interface {
	PageURL(ctx context.Context, pageID int) (string, error)
}

// SummaryService fetches the plain-text introductory extract of a page.
type SummaryService interface {
	Summary(ctx context.Context, pageID int) (string, error)
}

// Resolver selects the single best-matching article for a request from an
// ordered list of candidate search queries.
type Resolver interface {
	// Resolve iterates the queries in order and returns the first
	// confidently matching non-disambiguation page.
	// Returns ENOTFOUND if no acceptable page is located.
	Resolve(ctx context.Context, req SearchRequest, queries []string) (*ResolvedPage, error)
}
