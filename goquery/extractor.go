// Package goquery implements HTML content extraction for Wikipedia
// articles on top of a parsed DOM tree. Working on the tree rather than
// raw markup keeps anchor/boundary logic robust against malformed or
// re-ordered markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/reeljournal/wikifilm"
)

// Ensure Extractor implements wikifilm.Extractor at compile time.
var _ wikifilm.Extractor = (*Extractor)(nil)

// Extractor decomposes raw MediaWiki-rendered HTML into an infobox, lead
// section, body sections, and table of contents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFull returns the structured decomposition of an article. The
// infobox is captured from the raw markup; everything else is extracted
// after sanitization.
func (e *Extractor) ExtractFull(rawHTML string, sections []wikifilm.Section) (*wikifilm.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wikifilm.Errorf(wikifilm.EINVALID, "failed to parse article HTML: %v", err)
	}

	infobox := extractInfobox(doc)
	sanitizeDoc(doc)

	return &wikifilm.Extraction{
		Infobox:     infobox,
		LeadSection: extractLead(doc),
		Sections:    extractSections(doc, sections),
		TOC:         wikifilm.BuildTOC(sections),
	}, nil
}

// ExtractLegacy returns plain-text content keyed by section title,
// restricted to well-known film/TV section names.
func (e *Extractor) ExtractLegacy(rawHTML string, sections []wikifilm.Section) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wikifilm.Errorf(wikifilm.EINVALID, "failed to parse article HTML: %v", err)
	}
	return extractLegacySections(doc, sections), nil
}

// contentRoot returns the element whose children are the article's
// top-level blocks: the mw-parser-output wrapper when present, the body
// otherwise.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	if root := doc.Find("div.mw-parser-output").First(); root.Length() > 0 {
		return root
	}
	return doc.Find("body").First()
}

// collapseWhitespace trims a string and collapses internal whitespace
// runs to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
