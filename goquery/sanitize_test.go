package goquery_test

import (
	"testing"

	wikiquery "github.com/reeljournal/wikifilm/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes scripts and styles", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<p>keep</p><script>alert(1)</script><style>p{color:red}</style>`)

		require.NoError(t, err)
		assert.Contains(t, out, "<p>keep</p>")
		assert.NotContains(t, out, "alert")
		assert.NotContains(t, out, "color:red")
	})

	t.Run("removes edit-section links", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<h2>Plot<span class="mw-editsection"><a href="#">edit</a></span></h2>`)

		require.NoError(t, err)
		assert.NotContains(t, out, "mw-editsection")
		assert.NotContains(t, out, "edit</a>")
	})

	t.Run("removes navigation boxes and metadata", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<p>keep</p><div class="navbox">nav</div><table class="navbox"><tr><td>nav</td></tr></table><div class="metadata plainlinks">hidden cats</div>`)

		require.NoError(t, err)
		assert.Contains(t, out, "keep")
		assert.NotContains(t, out, "nav")
		assert.NotContains(t, out, "hidden cats")
	})

	t.Run("removes inline-hidden elements", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<p>keep</p><span style="display:none">invisible</span><div style="display: none">also invisible</div>`)

		require.NoError(t, err)
		assert.NotContains(t, out, "invisible")
	})

	t.Run("rewrites internal wiki links to absolute URLs", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<p><a href="/wiki/Keanu_Reeves">Keanu Reeves</a> and <a href="https://example.com/x">other</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, out, `href="https://en.wikipedia.org/wiki/Keanu_Reeves"`)
		assert.Contains(t, out, `href="https://example.com/x"`)
	})

	t.Run("strips citation superscripts", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<p>fact<sup class="reference">[1]</sup><sup class="noprint Inline-Template">[citation needed]</sup></p>`)

		require.NoError(t, err)
		assert.Contains(t, out, "fact")
		assert.NotContains(t, out, "[1]")
		assert.NotContains(t, out, "citation needed")
	})

	t.Run("removes IPA spans and unwraps nowrap spans", func(t *testing.T) {
		t.Parallel()

		out, err := wikiquery.Sanitize(`<p><span class="IPA">/ˈmeɪtrɪks/</span><span class="nowrap">March 31, 1999</span></p>`)

		require.NoError(t, err)
		assert.NotContains(t, out, "ˈmeɪtrɪks")
		assert.Contains(t, out, "March 31, 1999")
		assert.NotContains(t, out, "nowrap")
	})
}
