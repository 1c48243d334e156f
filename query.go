package wikifilm

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	subtitleRe = regexp.MustCompile(`:\s+.+$`)
	dashRe     = regexp.MustCompile(`\s+[-–—]\s+.+$`)
)

// CleanTitle strips a trailing colon-introduced subtitle and a trailing
// dash-introduced suffix from a title, e.g. "Dune: Part Two" -> "Dune".
func CleanTitle(title string) string {
	clean := subtitleRe.ReplaceAllString(title, "")
	clean = dashRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// GenerateQueries produces the ordered list of candidate search queries for
// a title, most specific first: year-qualified variants, then media-type
// variants, then the bare title. Duplicates are removed preserving
// first-seen order. The result is never empty; the bare title is always
// present.
func GenerateQueries(title, year string, mediaType MediaType) []string {
	suffix := mediaType.Suffix()
	clean := CleanTitle(title)

	var queries []string

	// Most specific: title with year and media-type qualifier.
	if year != "" {
		queries = append(queries,
			fmt.Sprintf("%s %s %s", title, year, suffix),
			fmt.Sprintf("%s (%s %s)", title, year, suffix),
		)
		if clean != title {
			queries = append(queries,
				fmt.Sprintf("%s %s %s", clean, year, suffix),
				fmt.Sprintf("%s (%s %s)", clean, year, suffix),
			)
		}
	}

	// Media-type qualifier only.
	queries = append(queries,
		fmt.Sprintf("%s %s", title, suffix),
		fmt.Sprintf("%s (%s)", title, suffix),
	)
	if clean != title {
		queries = append(queries,
			fmt.Sprintf("%s %s", clean, suffix),
			fmt.Sprintf("%s (%s)", clean, suffix),
		)
	}

	// Bare titles as the last resort.
	queries = append(queries, title)
	if clean != title {
		queries = append(queries, clean)
	}

	return dedupe(queries)
}

// dedupe removes duplicate strings preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
