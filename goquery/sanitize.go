package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// wikiBaseURL prefixes rewritten internal wiki links.
const wikiBaseURL = "https://en.wikipedia.org"

// Sanitize cleans a raw HTML fragment for in-app rendering while
// preserving structure. This is a pre-pass: render-time allow-list
// sanitization remains the caller's responsibility.
func Sanitize(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}
	sanitizeDoc(doc)
	return doc.Find("body").Html()
}

// sanitizeDoc strips Wikipedia chrome and unsafe markup from the document
// in place: scripts, styles, edit links, navigation boxes, hidden
// elements, citation markers, and pronunciation spans. Internal wiki
// links are rewritten to absolute URLs.
func sanitizeDoc(doc *goquery.Document) {
	doc.Find("script, style").Remove()
	doc.Find("span.mw-editsection").Remove()
	doc.Find("div.navbox, table.navbox").Remove()
	doc.Find("div.metadata").Remove()

	// Inline-hidden elements.
	doc.Find(`[style*="display:none"], [style*="display: none"]`).Remove()

	// "Citation needed" templates and bare reference-number superscripts.
	doc.Find("sup.noprint, sup.reference").Remove()

	// Pronunciation/IPA spans are noise in prose.
	doc.Find("span.IPA").Remove()

	// Keep the inner content of no-wrap spans.
	doc.Find("span.nowrap").Each(func(_ int, s *goquery.Selection) {
		if inner, err := s.Html(); err == nil {
			s.ReplaceWithHtml(inner)
		}
	})

	// Rewrite internal wiki links to absolute URLs.
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(href, "/wiki/") {
			s.SetAttr("href", wikiBaseURL+href)
		}
	})
}
