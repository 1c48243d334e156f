package wikifilm

// MinSectionChars is the minimum length of a section's cleaned text
// content. Shorter sections are dropped as non-informative.
const MinSectionChars = 100

// MaxLegacySectionChars caps the plain-text content of a legacy-mode
// section.
const MaxLegacySectionChars = 8000

// MaxImages caps the number of image file names returned per article.
const MaxImages = 10

// Infobox is the standardized summary table at the top of an article,
// parsed into a flat label -> value map. The raw table HTML is retained
// alongside the map so clients can render it directly.
type Infobox struct {
	HTML string            `json:"html"`
	Data map[string]string `json:"data"`
}

// ExtractedSection is one body section with sanitized HTML content.
type ExtractedSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Level   int    `json:"level"`
	Content string `json:"content"`
}

// Extraction is the decomposed article content produced by an Extractor
// in structured mode.
type Extraction struct {
	Infobox     *Infobox
	LeadSection string
	Sections    []ExtractedSection
	TOC         []TOCEntry
}

// Extractor decomposes raw article HTML into structured content.
// Implementations hide the HTML parsing strategy.
type Extractor interface {
	// ExtractFull returns the infobox, lead section, body sections as
	// sanitized HTML, and the table of contents.
	ExtractFull(html string, sections []Section) (*Extraction, error)

	// ExtractLegacy returns plain-text content keyed by section title,
	// restricted to well-known film/TV section names.
	ExtractLegacy(html string, sections []Section) (map[string]string, error)
}

// FullResult is the structured-mode response for a resolved article.
type FullResult struct {
	Title       string             `json:"title"`
	PageID      int                `json:"pageId"`
	URL         string             `json:"url"`
	Infobox     *Infobox           `json:"infobox"`
	LeadSection string             `json:"leadSection"`
	Sections    []ExtractedSection `json:"sections"`
	TOC         []TOCEntry         `json:"toc"`
	Images      []string           `json:"images"`
	HasSections bool               `json:"hasSections"`
	IsLimited   bool               `json:"isLimited"`
}

// LegacyResult is the legacy-mode response: plain-text content keyed by
// section name. IsLimited signals summary-only content (at most one
// section, typically the Overview fallback).
type LegacyResult struct {
	Title       string            `json:"title"`
	PageID      int               `json:"pageId"`
	URL         string            `json:"url"`
	Sections    map[string]string `json:"sections"`
	HasSections bool              `json:"hasSections"`
	IsLimited   bool              `json:"isLimited"`
}
