package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// extractLead returns the article's lead: the leading contiguous run of
// paragraphs appearing after the infobox and before the first level-2
// heading. Trailing non-paragraph leftovers (hatnotes, figures, stray
// tables) are discarded.
func extractLead(doc *goquery.Document) string {
	children := contentRoot(doc).Children()

	var parts []string
	started := false
	for i := 0; i < children.Length(); i++ {
		node := children.Get(i)

		// The lead ends at the first h2, whether bare or wrapped in a
		// heading container div.
		if containsHeading(node, 2) {
			break
		}

		if isParagraph(node) {
			sel := children.Eq(i)
			if strings.TrimSpace(sel.Text()) == "" {
				continue
			}
			if fragment, err := goquery.OuterHtml(sel); err == nil {
				parts = append(parts, fragment)
				started = true
			}
			continue
		}

		// A non-paragraph after the first paragraph ends the run.
		if started {
			break
		}
	}

	return strings.Join(parts, "")
}

// isParagraph reports whether the node is a <p> element.
func isParagraph(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "p"
}

// containsHeading reports whether the node is, or contains, a heading of
// the given level.
func containsHeading(n *html.Node, level int) bool {
	if n.Type == html.ElementNode && n.Data == headingTag(level) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if containsHeading(c, level) {
			return true
		}
	}
	return false
}

// headingTag returns the tag name for a heading level, e.g. 2 -> "h2".
func headingTag(level int) string {
	switch level {
	case 1:
		return "h1"
	case 2:
		return "h2"
	case 3:
		return "h3"
	case 4:
		return "h4"
	case 5:
		return "h5"
	case 6:
		return "h6"
	}
	return "h2"
}
