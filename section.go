package wikifilm

import "strings"

// Section is the raw metadata for one article section as reported by the
// MediaWiki parse API. Sections form a flat ordered list; a section's
// extent in the HTML runs from its anchor to the anchor of the next
// section whose Level is less than or equal to its own.
type Section struct {
	// Title is the heading text with markup stripped.
	Title string

	// Anchor is the stable id attached to the heading in the rendered HTML.
	Anchor string

	// Index is the section's position in document order.
	Index int

	// Level is the heading level (2 for h2, 3 for h3, ...).
	Level int

	// TOCLevel is the nesting depth in the table of contents (1-based).
	TOCLevel int
}

// TOCEntry is one row of the table of contents presented to clients.
type TOCEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// boilerplateSections are section titles that carry no article content
// worth rendering in-app. Matched case-insensitively and exactly.
var boilerplateSections = map[string]struct{}{
	"see also":        {},
	"references":      {},
	"external links":  {},
	"notes":           {},
	"further reading": {},
	"bibliography":    {},
}

// IsBoilerplateSection reports whether a section title is on the
// boilerplate denylist (References, External links, etc.).
func IsBoilerplateSection(title string) bool {
	_, ok := boilerplateSections[strings.ToLower(strings.TrimSpace(title))]
	return ok
}

// legacyTargetSections are the section-name keywords the legacy plain-text
// mode extracts. Anything not fuzzily matching one of these is skipped.
var legacyTargetSections = []string{
	"plot", "synopsis", "premise", "summary", "story", "storyline",
	"episodes", "episode list", "series overview",
	"production", "development", "filming", "music", "casting",
	"cast", "cast and characters",
	"release", "broadcast", "distribution", "marketing", "box office",
	"reception", "critical response", "reviews", "ratings",
	"themes", "analysis",
	"awards", "awards and nominations", "accolades",
	"legacy", "impact", "influence",
}

// IsLegacyTarget reports whether a section title fuzzily matches one of
// the legacy target keywords: equal, or either contains the other.
func IsLegacyTarget(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return false
	}
	for _, target := range legacyTargetSections {
		if t == target || strings.Contains(t, target) || strings.Contains(target, t) {
			return true
		}
	}
	return false
}

// BuildTOC converts section metadata into the client-facing table of
// contents, dropping boilerplate sections. It is built purely from
// metadata; section content is never consulted.
func BuildTOC(sections []Section) []TOCEntry {
	toc := make([]TOCEntry, 0, len(sections))
	for _, s := range sections {
		if IsBoilerplateSection(s.Title) {
			continue
		}
		toc = append(toc, TOCEntry{
			ID:    s.Anchor,
			Title: s.Title,
			Level: s.TOCLevel,
		})
	}
	return toc
}
