package wikifilm

import "context"

// MediaType distinguishes films from television series. It affects
// search-query phrasing and match scoring.
type MediaType string

// Supported media types. Anything other than MediaTypeTV is treated as a film.
const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Suffix returns the qualifier Wikipedia uses in article titles for this
// media type, e.g. "Dune (2021 film)" or "Severance (TV series)".
func (m MediaType) Suffix() string {
	if m == MediaTypeTV {
		return "TV series"
	}
	return "film"
}

// Word returns the single word whose presence in a result title suggests
// the article covers this media type.
func (m MediaType) Word() string {
	if m == MediaTypeTV {
		return "series"
	}
	return "film"
}

// SearchRequest describes a single article lookup. It is constructed once
// per request and never mutated.
type SearchRequest struct {
	// Title is the film or series name as known to the caller (typically a
	// TMDB title). Required.
	Title string `json:"title"`

	// Year is the release year, when known. Used to disambiguate remakes.
	Year string `json:"year"`

	// MediaType is the film/series hint.
	MediaType MediaType `json:"mediaType"`

	// FullContent selects the structured HTML output over the legacy
	// plain-text output.
	FullContent bool `json:"fullContent"`
}

// Validate returns an error if the request is missing required fields.
func (r *SearchRequest) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "title is required")
	}
	return nil
}

// ArticleService looks up and extracts the Wikipedia article for a request.
type ArticleService interface {
	// Lookup resolves the article and extracts structured HTML content.
	// Returns ENOTFOUND if no acceptable article exists.
	Lookup(ctx context.Context, req SearchRequest) (*FullResult, error)

	// LookupLegacy resolves the article and extracts plain-text sections
	// restricted to well-known film/TV section names.
	// Returns ENOTFOUND if no acceptable article exists.
	LookupLegacy(ctx context.Context, req SearchRequest) (*LegacyResult, error)
}
