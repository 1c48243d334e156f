package goquery

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/reeljournal/wikifilm"
	"golang.org/x/net/html"
)

var (
	citationRe = regexp.MustCompile(`\[\d+\]`)
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	lineRunRe  = regexp.MustCompile(`\n{2,}`)
)

// extractLegacySections slices the document per the same boundary rules
// as structured mode, but keeps only sections fuzzily matching the legacy
// target keywords and converts their content to plain text.
func extractLegacySections(doc *goquery.Document, sections []wikifilm.Section) map[string]string {
	sorted := make([]wikifilm.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	children := contentRoot(doc).Children()
	result := make(map[string]string)

	for i, sec := range sorted {
		if !wikifilm.IsLegacyTarget(sec.Title) {
			continue
		}

		start := childWithAnchor(children, sec.Anchor, 0)
		if start == -1 {
			continue
		}
		end := sectionEnd(children, sorted, i, start)

		text := plainText(children.Slice(start, end))
		if len(text) <= wikifilm.MinSectionChars {
			continue
		}

		result[sec.Title] = truncate(text, wikifilm.MaxLegacySectionChars)
	}

	return result
}

// plainText converts a selection to readable plain text: headings become
// **Heading** markers, list items become bullets, citation markers are
// stripped, and whitespace is normalized.
func plainText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(n, &sb)
	}

	text := citationRe.ReplaceAllString(sb.String(), "")
	text = spaceRunRe.ReplaceAllString(text, " ")

	// Tidy line boundaries.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = lineRunRe.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}

// writeNodeText walks the node emitting text with lightweight structure
// markers.
func writeNodeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if hasClass(n, "mw-editsection") {
			return
		}
		switch n.Data {
		case "script", "style":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n**")
			sb.WriteString(collapseWhitespace(nodeText(n)))
			sb.WriteString("**\n")
			return
		case "li":
			sb.WriteString("\n• ")
		case "br":
			sb.WriteString("\n")
		case "p", "div", "table", "tr", "ul", "ol", "dl", "blockquote":
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "table", "tr", "ul", "ol", "dl", "blockquote", "li":
			sb.WriteString("\n")
		}
	}
}

// hasClass reports whether an element's class attribute includes the
// given class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "mw-editsection") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// truncate cuts a string to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
