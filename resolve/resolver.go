// Package resolve selects the single best-matching Wikipedia article for
// an ambiguous film/TV title from a prioritized list of search queries.
package resolve

import (
	"context"
	"strings"

	"github.com/reeljournal/wikifilm"
)

// DefaultMaxAttempts is the global budget of search calls across the whole
// resolution, not per query.
const DefaultMaxAttempts = 10

// DefaultSearchLimit is the number of hits requested per search call.
const DefaultSearchLimit = 10

// Ensure Resolver implements wikifilm.Resolver at compile time.
var _ wikifilm.Resolver = (*Resolver)(nil)

// Resolver iterates candidate queries, filters out disambiguation pages,
// and scores hits with layered exact -> fuzzy -> fallback matching.
// Title matching between a colloquial title and a formal Wikipedia title
// is inherently fuzzy (subtitles, "(film)" qualifiers, release-year
// disambiguation for remakes), so an exact or type-confirmed match stops
// the search immediately while weaker matches are kept as fallbacks.
type Resolver struct {
	Searcher   wikifilm.Searcher
	Categories wikifilm.CategoryChecker

	// MaxAttempts caps total search calls. Defaults to DefaultMaxAttempts.
	MaxAttempts int

	// SearchLimit is the per-query hit count. Defaults to DefaultSearchLimit.
	SearchLimit int
}

// Resolve returns the first confidently matching non-disambiguation page.
// Resolution halts at the first query round that yields any page,
// immediate or fallback. Returns ENOTFOUND when every round comes up empty.
func (r *Resolver) Resolve(ctx context.Context, req wikifilm.SearchRequest, queries []string) (*wikifilm.ResolvedPage, error) {
	maxAttempts := r.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	limit := r.SearchLimit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	attempts := 0
	for _, query := range queries {
		if attempts >= maxAttempts {
			break
		}
		attempts++

		results, err := r.Searcher.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			continue
		}

		if page := r.matchRound(ctx, req, results); page != nil {
			return page, nil
		}

		// Nothing matched; settle for the first non-disambiguation hit.
		if page := r.firstNonDisambiguation(ctx, results); page != nil {
			return page, nil
		}
	}

	return nil, wikifilm.Errorf(wikifilm.ENOTFOUND, "No Wikipedia article found for this title")
}

// matchRound evaluates one query's hits in result order. A strong match
// (exact title, or title plus media-type/year confirmation) wins
// immediately; otherwise the first hit merely containing the title is
// remembered as a weak fallback.
func (r *Resolver) matchRound(ctx context.Context, req wikifilm.SearchRequest, results []wikifilm.SearchResult) *wikifilm.ResolvedPage {
	wantTitle := strings.ToLower(req.Title)
	wantSuffix := strings.ToLower(req.MediaType.Suffix())
	wantWord := req.MediaType.Word()

	var fallback *wikifilm.ResolvedPage
	for i := range results {
		hit := results[i]
		hitTitle := strings.ToLower(hit.Title)

		// Cheap lexical filter before the category lookup.
		if strings.Contains(hitTitle, "disambiguation") {
			continue
		}

		isExact := hitTitle == wantTitle ||
			strings.HasPrefix(hitTitle, wantTitle+" (") ||
			hitTitle == wantTitle+" ("+wantSuffix+")"
		containsTitle := strings.Contains(hitTitle, wantTitle)
		containsWord := strings.Contains(hitTitle, wantWord)
		containsYear := req.Year != "" && strings.Contains(hitTitle, req.Year)

		if r.isDisambiguation(ctx, hit.PageID) {
			continue
		}

		if isExact || (containsTitle && (containsWord || containsYear)) {
			return &wikifilm.ResolvedPage{Title: hit.Title, PageID: hit.PageID}
		}

		if fallback == nil && containsTitle {
			fallback = &wikifilm.ResolvedPage{Title: hit.Title, PageID: hit.PageID}
		}
	}
	return fallback
}

// firstNonDisambiguation returns the first hit that is not a
// disambiguation page, or nil. The lexical title filter applies here as
// well: the category check fails open, so a "(disambiguation)"-titled
// hit must never survive on its title alone.
func (r *Resolver) firstNonDisambiguation(ctx context.Context, results []wikifilm.SearchResult) *wikifilm.ResolvedPage {
	for i := range results {
		if strings.Contains(strings.ToLower(results[i].Title), "disambiguation") {
			continue
		}
		if !r.isDisambiguation(ctx, results[i].PageID) {
			return &wikifilm.ResolvedPage{Title: results[i].Title, PageID: results[i].PageID}
		}
	}
	return nil
}

// isDisambiguation wraps the category lookup and fails open: an
// unreachable or erroring lookup is treated as "not a disambiguation
// page" so a transient failure cannot block resolution entirely. A wrong
// page simply yields poor or zero sections downstream, which degrades the
// response instead of failing it.
func (r *Resolver) isDisambiguation(ctx context.Context, pageID int) bool {
	disambig, err := r.Categories.IsDisambiguation(ctx, pageID)
	if err != nil {
		return false
	}
	return disambig
}
