package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/reeljournal/wikifilm"
)

// extractInfobox locates the first infobox table and parses its rows into
// a flat label -> value map. The raw table HTML is retained so clients
// can render it directly. Returns nil when the article has no infobox.
func extractInfobox(doc *goquery.Document) *wikifilm.Infobox {
	table := doc.Find("table.infobox").First()
	if table.Length() == 0 {
		return nil
	}

	rawHTML, err := goquery.OuterHtml(table)
	if err != nil {
		return nil
	}

	data := make(map[string]string)
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}
		key := collapseWhitespace(th.Text())
		value := collapseWhitespace(td.Text())
		if key != "" && value != "" {
			data[key] = value
		}
	})

	return &wikifilm.Infobox{HTML: rawHTML, Data: data}
}
