package lookup_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/reeljournal/wikifilm"
	"github.com/reeljournal/wikifilm/lookup"
	"github.com/reeljournal/wikifilm/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*lookup.Service, *mock.Resolver, *mock.PageParser, *mock.Extractor) {
	resolver := &mock.Resolver{
		ResolveFn: func(ctx context.Context, req wikifilm.SearchRequest, queries []string) (*wikifilm.ResolvedPage, error) {
			return &wikifilm.ResolvedPage{Title: "The Matrix", PageID: 30007}, nil
		},
	}
	parser := &mock.PageParser{
		ParseFn: func(ctx context.Context, pageID int) (*wikifilm.ParsedPage, error) {
			return &wikifilm.ParsedPage{
				Title:  "The Matrix",
				PageID: pageID,
				HTML:   "<div><p>html</p></div>",
				Sections: []wikifilm.Section{
					{Title: "Plot", Anchor: "Plot", Index: 1, Level: 2, TOCLevel: 1},
				},
				Images: []string{"poster.jpg"},
			}, nil
		},
	}
	extractor := &mock.Extractor{
		ExtractFullFn: func(html string, sections []wikifilm.Section) (*wikifilm.Extraction, error) {
			return &wikifilm.Extraction{
				LeadSection: "<p>lead</p>",
				Sections: []wikifilm.ExtractedSection{
					{ID: "Plot", Title: "Plot", Level: 2, Content: "<p>plot</p>"},
				},
				TOC: []wikifilm.TOCEntry{{ID: "Plot", Title: "Plot", Level: 1}},
			}, nil
		},
		ExtractLegacyFn: func(html string, sections []wikifilm.Section) (map[string]string, error) {
			return map[string]string{"Plot": "plot text"}, nil
		},
	}

	svc := &lookup.Service{
		Resolver: resolver,
		Parser:   parser,
		PageInfo: &mock.PageInfoService{
			PageURLFn: func(ctx context.Context, pageID int) (string, error) {
				return "https://en.wikipedia.org/wiki/The_Matrix", nil
			},
		},
		Summaries: &mock.SummaryService{
			SummaryFn: func(ctx context.Context, pageID int) (string, error) {
				return "The Matrix is a 1999 film.", nil
			},
		},
		Extractor: extractor,
	}
	return svc, resolver, parser, extractor
}

func TestService_Lookup(t *testing.T) {
	t.Parallel()

	req := wikifilm.SearchRequest{Title: "The Matrix", Year: "1999", MediaType: wikifilm.MediaTypeMovie, FullContent: true}

	t.Run("assembles the structured result", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newService()
		result, err := svc.Lookup(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "The Matrix", result.Title)
		assert.Equal(t, 30007, result.PageID)
		assert.Equal(t, "https://en.wikipedia.org/wiki/The_Matrix", result.URL)
		assert.Equal(t, "<p>lead</p>", result.LeadSection)
		require.Len(t, result.Sections, 1)
		assert.True(t, result.HasSections)
		assert.False(t, result.IsLimited)
	})

	t.Run("flags are consistent when extraction finds nothing", func(t *testing.T) {
		t.Parallel()

		svc, _, _, extractor := newService()
		extractor.ExtractFullFn = func(html string, sections []wikifilm.Section) (*wikifilm.Extraction, error) {
			return &wikifilm.Extraction{LeadSection: "<p>lead</p>"}, nil
		}

		result, err := svc.Lookup(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, result.HasSections)
		assert.True(t, result.IsLimited)
		assert.Equal(t, "<p>lead</p>", result.LeadSection)
	})

	t.Run("passes resolver-generated queries most specific first", func(t *testing.T) {
		t.Parallel()

		svc, resolver, _, _ := newService()
		var got []string
		resolver.ResolveFn = func(ctx context.Context, r wikifilm.SearchRequest, queries []string) (*wikifilm.ResolvedPage, error) {
			got = queries
			return &wikifilm.ResolvedPage{Title: "The Matrix", PageID: 30007}, nil
		}

		_, err := svc.Lookup(context.Background(), req)

		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "The Matrix 1999 film", got[0])
		assert.Equal(t, "The Matrix", got[len(got)-1])
	})

	t.Run("truncates images to ten", func(t *testing.T) {
		t.Parallel()

		svc, _, parser, _ := newService()
		parser.ParseFn = func(ctx context.Context, pageID int) (*wikifilm.ParsedPage, error) {
			images := make([]string, 25)
			for i := range images {
				images[i] = fmt.Sprintf("img%d.jpg", i)
			}
			return &wikifilm.ParsedPage{Title: "The Matrix", PageID: pageID, Images: images}, nil
		}

		result, err := svc.Lookup(context.Background(), req)

		require.NoError(t, err)
		assert.Len(t, result.Images, 10)
	})

	t.Run("missing title is EINVALID", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newService()
		_, err := svc.Lookup(context.Background(), wikifilm.SearchRequest{})

		require.Error(t, err)
		assert.Equal(t, wikifilm.EINVALID, wikifilm.ErrorCode(err))
	})

	t.Run("propagates ENOTFOUND from the resolver", func(t *testing.T) {
		t.Parallel()

		svc, resolver, _, _ := newService()
		resolver.ResolveFn = func(ctx context.Context, r wikifilm.SearchRequest, queries []string) (*wikifilm.ResolvedPage, error) {
			return nil, wikifilm.Errorf(wikifilm.ENOTFOUND, "No Wikipedia article found for this title")
		}

		_, err := svc.Lookup(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, wikifilm.ENOTFOUND, wikifilm.ErrorCode(err))
	})
}

func TestService_LookupLegacy(t *testing.T) {
	t.Parallel()

	req := wikifilm.SearchRequest{Title: "The Matrix", Year: "1999", MediaType: wikifilm.MediaTypeMovie}

	t.Run("adds the summary as Overview", func(t *testing.T) {
		t.Parallel()

		svc, _, _, _ := newService()
		result, err := svc.LookupLegacy(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "plot text", result.Sections["Plot"])
		assert.Equal(t, "The Matrix is a 1999 film.", result.Sections["Overview"])
		assert.True(t, result.HasSections)
		assert.False(t, result.IsLimited)
	})

	t.Run("summary failure degrades softly", func(t *testing.T) {
		t.Parallel()

		svc, _, _, extractor := newService()
		extractor.ExtractLegacyFn = func(html string, sections []wikifilm.Section) (map[string]string, error) {
			return nil, nil
		}
		svc.Summaries = &mock.SummaryService{
			SummaryFn: func(ctx context.Context, pageID int) (string, error) {
				return "", wikifilm.Errorf(wikifilm.EUNAVAILABLE, "summary unreachable")
			},
		}

		result, err := svc.LookupLegacy(context.Background(), req)

		require.NoError(t, err)
		assert.Empty(t, result.Sections)
		assert.False(t, result.HasSections)
		assert.True(t, result.IsLimited)
	})

	t.Run("summary-only result is limited", func(t *testing.T) {
		t.Parallel()

		svc, _, _, extractor := newService()
		extractor.ExtractLegacyFn = func(html string, sections []wikifilm.Section) (map[string]string, error) {
			return map[string]string{}, nil
		}

		result, err := svc.LookupLegacy(context.Background(), req)

		require.NoError(t, err)
		assert.Len(t, result.Sections, 1)
		assert.True(t, result.HasSections)
		assert.True(t, result.IsLimited)
	})

	t.Run("does not overwrite an extracted Overview", func(t *testing.T) {
		t.Parallel()

		svc, _, _, extractor := newService()
		extractor.ExtractLegacyFn = func(html string, sections []wikifilm.Section) (map[string]string, error) {
			return map[string]string{"Overview": "extracted overview"}, nil
		}

		result, err := svc.LookupLegacy(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "extracted overview", result.Sections["Overview"])
	})
}
