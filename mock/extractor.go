package mock

import "github.com/reeljournal/wikifilm"

var _ wikifilm.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikifilm.Extractor.
type Extractor struct {
	ExtractFullFn   func(html string, sections []wikifilm.Section) (*wikifilm.Extraction, error)
	ExtractLegacyFn func(html string, sections []wikifilm.Section) (map[string]string, error)
}

func (e *Extractor) ExtractFull(html string, sections []wikifilm.Section) (*wikifilm.Extraction, error) {
	return e.ExtractFullFn(html, sections)
}

func (e *Extractor) ExtractLegacy(html string, sections []wikifilm.Section) (map[string]string, error) {
	return e.ExtractLegacyFn(html, sections)
}
