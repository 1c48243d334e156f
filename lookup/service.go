// Package lookup composes query generation, candidate resolution, content
// fetching, and extraction into the article lookup pipeline. Each request
// runs the stages strictly in order; the service holds no state between
// requests.
package lookup

import (
	"context"

	"github.com/reeljournal/wikifilm"
)

// Ensure Service implements wikifilm.ArticleService at compile time.
var _ wikifilm.ArticleService = (*Service)(nil)

// Service is the article lookup pipeline.
type Service struct {
	Resolver  wikifilm.Resolver
	Parser    wikifilm.PageParser
	PageInfo  wikifilm.PageInfoService
	Summaries wikifilm.SummaryService
	Extractor wikifilm.Extractor
}

// Lookup resolves the article for a request and extracts structured
// content. A resolved article with zero usable sections still succeeds,
// with IsLimited set, so callers can fall back to the lead section and an
// external link.
func (s *Service) Lookup(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.FullResult, error) {
	page, parsed, pageURL, err := s.resolveAndFetch(ctx, req)
	if err != nil {
		return nil, err
	}

	ext, err := s.Extractor.ExtractFull(parsed.HTML, parsed.Sections)
	if err != nil {
		return nil, err
	}

	images := parsed.Images
	if len(images) > wikifilm.MaxImages {
		images = images[:wikifilm.MaxImages]
	}

	return &wikifilm.FullResult{
		Title:       page.Title,
		PageID:      page.PageID,
		URL:         pageURL,
		Infobox:     ext.Infobox,
		LeadSection: ext.LeadSection,
		Sections:    ext.Sections,
		TOC:         ext.TOC,
		Images:      images,
		HasSections: len(ext.Sections) > 0,
		IsLimited:   len(ext.Sections) == 0,
	}, nil
}

// LookupLegacy resolves the article and extracts plain-text sections.
// When the page summary is available and no Overview section was
// extracted, the summary becomes the Overview. IsLimited flags
// summary-only results.
func (s *Service) LookupLegacy(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.LegacyResult, error) {
	page, parsed, pageURL, err := s.resolveAndFetch(ctx, req)
	if err != nil {
		return nil, err
	}

	sections, err := s.Extractor.ExtractLegacy(parsed.HTML, parsed.Sections)
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = make(map[string]string)
	}

	// The summary fallback fails soft: a missing summary only means no
	// Overview section.
	if _, ok := sections["Overview"]; !ok {
		if summary, err := s.Summaries.Summary(ctx, page.PageID); err == nil && summary != "" {
			sections["Overview"] = summary
		}
	}

	return &wikifilm.LegacyResult{
		Title:       page.Title,
		PageID:      page.PageID,
		URL:         pageURL,
		Sections:    sections,
		HasSections: len(sections) > 0,
		IsLimited:   len(sections) <= 1,
	}, nil
}

// resolveAndFetch runs the shared front half of both modes: validate,
// generate queries, resolve, and fetch the parse output and page URL.
func (s *Service) resolveAndFetch(ctx context.Context, req wikifilm.SearchRequest) (*wikifilm.ResolvedPage, *wikifilm.ParsedPage, string, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, "", err
	}

	queries := wikifilm.GenerateQueries(req.Title, req.Year, req.MediaType)

	page, err := s.Resolver.Resolve(ctx, req, queries)
	if err != nil {
		return nil, nil, "", err
	}

	parsed, err := s.Parser.Parse(ctx, page.PageID)
	if err != nil {
		return nil, nil, "", err
	}

	pageURL, err := s.PageInfo.PageURL(ctx, page.PageID)
	if err != nil {
		return nil, nil, "", err
	}

	return page, parsed, pageURL, nil
}
