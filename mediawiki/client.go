// Package mediawiki provides a client for the MediaWiki action API,
// implementing the search, category, parse, page-info, and summary
// interfaces of the wikifilm package against en.wikipedia.org.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/reeljournal/wikifilm"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the English Wikipedia action API endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 15 * time.Second

// Ensure Client implements the upstream interfaces at compile time.
var (
	_ wikifilm.Searcher        = (*Client)(nil)
	_ wikifilm.CategoryChecker = (*Client)(nil)
	_ wikifilm.PageParser      = (*Client)(nil)
	_ wikifilm.PageInfoService = (*Client)(nil)
	_ wikifilm.SummaryService  = (*Client)(nil)
)

// Client talks to the MediaWiki action API over HTTP. All calls are
// sequential and rate-limited with a shared token bucket so a single
// request's resolver loop cannot hammer the API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outgoing API calls at rps requests per second with a
// burst of 1. Zero or negative rps disables rate limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithUserAgent sets the User-Agent header sent with API requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a new Client with defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: "wikifilm/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// searchResponse mirrors action=query&list=search.
type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			PageID  int    `json:"pageid"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

// Search returns up to limit full-text search hits for the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]wikifilm.SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("format", "json")

	var out searchResponse
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}

	results := make([]wikifilm.SearchResult, 0, len(out.Query.Search))
	for _, hit := range out.Query.Search {
		results = append(results, wikifilm.SearchResult{
			Title:   hit.Title,
			PageID:  hit.PageID,
			Snippet: hit.Snippet,
		})
	}
	return results, nil
}

// pagesResponse mirrors the action=query&pageids=... family of responses.
type pagesResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID     int    `json:"pageid"`
			Title      string `json:"title"`
			Extract    string `json:"extract"`
			FullURL    string `json:"fullurl"`
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"pages"`
	} `json:"query"`
}

// IsDisambiguation reports whether the page belongs to a disambiguation
// category.
func (c *Client) IsDisambiguation(ctx context.Context, pageID int) (bool, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("pageids", strconv.Itoa(pageID))
	params.Set("prop", "categories")
	params.Set("format", "json")

	var out pagesResponse
	if err := c.get(ctx, params, &out); err != nil {
		return false, err
	}

	page, ok := out.Query.Pages[strconv.Itoa(pageID)]
	if !ok {
		return false, nil
	}
	for _, cat := range page.Categories {
		if strings.Contains(strings.ToLower(cat.Title), "disambiguation") {
			return true, nil
		}
	}
	return false, nil
}

// Summary fetches the plain-text introductory extract of a page. An empty
// extract is returned as "" without error.
func (c *Client) Summary(ctx context.Context, pageID int) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("pageids", strconv.Itoa(pageID))
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("format", "json")

	var out pagesResponse
	if err := c.get(ctx, params, &out); err != nil {
		return "", err
	}

	page, ok := out.Query.Pages[strconv.Itoa(pageID)]
	if !ok {
		return "", nil
	}
	return strings.TrimSpace(page.Extract), nil
}

// PageURL resolves the canonical URL of a page, falling back to the curid
// form when the API reports no full URL.
func (c *Client) PageURL(ctx context.Context, pageID int) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("pageids", strconv.Itoa(pageID))
	params.Set("prop", "info")
	params.Set("inprop", "url")
	params.Set("format", "json")

	var out pagesResponse
	if err := c.get(ctx, params, &out); err != nil {
		return "", err
	}

	if page, ok := out.Query.Pages[strconv.Itoa(pageID)]; ok && page.FullURL != "" {
		return page.FullURL, nil
	}
	return fmt.Sprintf("https://en.wikipedia.org/?curid=%d", pageID), nil
}

// parseResponse mirrors action=parse&prop=text|sections|images.
type parseResponse struct {
	Parse struct {
		Title    string            `json:"title"`
		PageID   int               `json:"pageid"`
		Text     map[string]string `json:"text"`
		Sections []struct {
			TOCLevel int    `json:"toclevel"`
			Level    string `json:"level"`
			Line     string `json:"line"`
			Index    string `json:"index"`
			Anchor   string `json:"anchor"`
		} `json:"sections"`
		Images []string `json:"images"`
	} `json:"parse"`
}

// tagRe strips markup from section heading lines, which the API returns
// as HTML fragments.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// Parse fetches the rendered HTML, section metadata, and image file names
// for a page.
func (c *Client) Parse(ctx context.Context, pageID int) (*wikifilm.ParsedPage, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("pageid", strconv.Itoa(pageID))
	params.Set("prop", "text|sections|images")
	params.Set("format", "json")

	var out parseResponse
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}

	page := &wikifilm.ParsedPage{
		Title:  out.Parse.Title,
		PageID: out.Parse.PageID,
		HTML:   out.Parse.Text["*"],
		Images: out.Parse.Images,
	}

	for i, s := range out.Parse.Sections {
		level, err := strconv.Atoi(s.Level)
		if err != nil || level <= 0 {
			level = 2
		}
		index, err := strconv.Atoi(s.Index)
		if err != nil {
			// Transcluded sections have non-numeric indexes; keep
			// document order.
			index = i + 1
		}
		page.Sections = append(page.Sections, wikifilm.Section{
			Title:    strings.TrimSpace(tagRe.ReplaceAllString(s.Line, "")),
			Anchor:   s.Anchor,
			Index:    index,
			Level:    level,
			TOCLevel: s.TOCLevel,
		})
	}

	return page, nil
}

// get performs a rate-limited GET against the action API and decodes the
// JSON response into v.
func (c *Client) get(ctx context.Context, params url.Values, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wikifilm.Errorf(wikifilm.EUNAVAILABLE, "wikipedia request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return wikifilm.Errorf(wikifilm.EUNAVAILABLE, "wikipedia returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wikifilm.Errorf(wikifilm.EUNAVAILABLE, "reading wikipedia response: %v", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return wikifilm.Errorf(wikifilm.EUNAVAILABLE, "decoding wikipedia response: %v", err)
	}
	return nil
}
