package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/reeljournal/wikifilm"
	wikiquery "github.com/reeljournal/wikifilm/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractLegacy(t *testing.T) {
	t.Parallel()

	extractor := wikiquery.NewExtractor()

	t.Run("keeps only target sections as plain text", func(t *testing.T) {
		t.Parallel()

		sections, err := extractor.ExtractLegacy(articleHTML, articleSections())

		require.NoError(t, err)
		assert.Contains(t, sections, "Plot")
		assert.Contains(t, sections, "Cast")
		assert.NotContains(t, sections, "References")
		assert.NotContains(t, sections["Plot"], "<p>")
		assert.Contains(t, sections["Plot"], "Thomas Anderson")
	})

	t.Run("renders headings and list items with markers", func(t *testing.T) {
		t.Parallel()

		sections, err := extractor.ExtractLegacy(articleHTML, articleSections())

		require.NoError(t, err)
		require.Contains(t, sections, "Cast")
		assert.Contains(t, sections["Cast"], "**Cast**")
		assert.Contains(t, sections["Cast"], "• Keanu Reeves as Neo")
		assert.Contains(t, sections["Cast"], "• Laurence Fishburne as Morpheus")
	})

	t.Run("strips citation markers and edit links", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<div class="mw-parser-output">
<div class="mw-heading mw-heading2"><h2 id="Plot">Plot</h2><span class="mw-editsection">[edit]</span></div>
<p>Something happens.[2] Then something else.[13] %s</p>
</div>`, strings.Repeat("padding ", 20))

		sections, err := extractor.ExtractLegacy(html, []wikifilm.Section{
			{Title: "Plot", Anchor: "Plot", Index: 1, Level: 2, TOCLevel: 1},
		})

		require.NoError(t, err)
		require.Contains(t, sections, "Plot")
		assert.NotContains(t, sections["Plot"], "[2]")
		assert.NotContains(t, sections["Plot"], "[13]")
		assert.NotContains(t, sections["Plot"], "[edit]")
	})

	t.Run("drops short sections", func(t *testing.T) {
		t.Parallel()

		html := `<div class="mw-parser-output">
<h2 id="Plot">Plot</h2><p>Too short.</p>
</div>`

		sections, err := extractor.ExtractLegacy(html, []wikifilm.Section{
			{Title: "Plot", Anchor: "Plot", Index: 1, Level: 2, TOCLevel: 1},
		})

		require.NoError(t, err)
		assert.Empty(t, sections)
	})

	t.Run("caps section content length", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<div class="mw-parser-output">
<h2 id="Plot">Plot</h2><p>%s</p>
</div>`, strings.Repeat("long plot. ", 2000))

		sections, err := extractor.ExtractLegacy(html, []wikifilm.Section{
			{Title: "Plot", Anchor: "Plot", Index: 1, Level: 2, TOCLevel: 1},
		})

		require.NoError(t, err)
		require.Contains(t, sections, "Plot")
		assert.LessOrEqual(t, len(sections["Plot"]), wikifilm.MaxLegacySectionChars)
	})

	t.Run("decodes HTML entities", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<div class="mw-parser-output">
<h2 id="Cast">Cast</h2><p>Smith &amp; Wesson &quot;quoted&quot; %s</p>
</div>`, strings.Repeat("filler ", 20))

		sections, err := extractor.ExtractLegacy(html, []wikifilm.Section{
			{Title: "Cast", Anchor: "Cast", Index: 1, Level: 2, TOCLevel: 1},
		})

		require.NoError(t, err)
		require.Contains(t, sections, "Cast")
		assert.Contains(t, sections["Cast"], `Smith & Wesson "quoted"`)
	})
}
