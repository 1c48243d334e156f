package goquery

import (
	"bytes"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/reeljournal/wikifilm"
	"golang.org/x/net/html"
)

// extractSections slices the document into one sanitized HTML fragment
// per section. Sections are processed in document order; boilerplate
// sections, sections whose anchors cannot be located, and sections with
// less than wikifilm.MinSectionChars of cleaned text are dropped.
//
// A section's extent runs from the top-level block holding its anchor up
// to the block holding the anchor of the next section whose level is less
// than or equal to its own. Subsections therefore stay nested inside
// their parent's content instead of truncating it.
func extractSections(doc *goquery.Document, sections []wikifilm.Section) []wikifilm.ExtractedSection {
	sorted := make([]wikifilm.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	children := contentRoot(doc).Children()
	result := make([]wikifilm.ExtractedSection, 0, len(sorted))

	for i, sec := range sorted {
		if wikifilm.IsBoilerplateSection(sec.Title) {
			continue
		}

		start := childWithAnchor(children, sec.Anchor, 0)
		if start == -1 {
			// Never fabricate a section whose anchor is missing.
			continue
		}

		end := sectionEnd(children, sorted, i, start)

		fragment := children.Slice(start, end)
		if len(collapseWhitespace(fragment.Text())) < wikifilm.MinSectionChars {
			continue
		}

		result = append(result, wikifilm.ExtractedSection{
			ID:      sec.Anchor,
			Title:   sec.Title,
			Level:   sec.Level,
			Content: renderSelection(fragment),
		})
	}

	return result
}

// sectionEnd finds the child index where section sorted[i] ends: the
// first later section at a sibling-or-higher level whose anchor can be
// located after start. Missing boundary anchors extend the section to the
// end of the document.
func sectionEnd(children *goquery.Selection, sorted []wikifilm.Section, i, start int) int {
	for j := i + 1; j < len(sorted); j++ {
		if sorted[j].Level > sorted[i].Level {
			continue
		}
		if idx := childWithAnchor(children, sorted[j].Anchor, start+1); idx != -1 {
			return idx
		}
	}
	return children.Length()
}

// childWithAnchor returns the index of the first top-level child at or
// after from that carries, or contains an element carrying, the given id.
func childWithAnchor(children *goquery.Selection, anchor string, from int) int {
	if anchor == "" {
		return -1
	}
	for i := from; i < children.Length(); i++ {
		if hasID(children.Get(i), anchor) {
			return i
		}
	}
	return -1
}

// hasID reports whether the node or any descendant element has the id.
func hasID(n *html.Node, id string) bool {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasID(c, id) {
			return true
		}
	}
	return false
}

// renderSelection renders every node of the selection back to HTML.
func renderSelection(sel *goquery.Selection) string {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(buf.String())
}
