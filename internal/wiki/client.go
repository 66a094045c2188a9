package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tradervijeth/Wiki-Forge/internal/domain"
)

// ErrPageNotFound signals that the requested title does not resolve to an
// existing page. It is not a transport fault; callers skip the title.
var ErrPageNotFound = errors.New("page not found")

// Client queries the MediaWiki Action API. One Fetch is one outbound GET;
// there are no retries.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type queryResponse struct {
	Query struct {
		Pages []pageResult `json:"pages"`
	} `json:"query"`
}

type pageResult struct {
	Title      string `json:"title"`
	Missing    bool   `json:"missing"`
	Invalid    bool   `json:"invalid"`
	Extract    string `json:"extract"`
	FullURL    string `json:"fullurl"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
	ExtLinks []struct {
		URL string `json:"url"`
	} `json:"extlinks"`
}

// Fetch retrieves one article by title. The returned record carries the
// canonical title and URL as resolved by the source, which may differ from
// the requested string when redirects apply.
func (c *Client) Fetch(ctx context.Context, title string) (*domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(title), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", title, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: unexpected status %d", title, resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding response for %q: %w", title, err)
	}

	if len(decoded.Query.Pages) == 0 {
		return nil, ErrPageNotFound
	}
	page := decoded.Query.Pages[0]
	if page.Missing || page.Invalid {
		return nil, ErrPageNotFound
	}

	text, summary, err := flattenExtract(page.Extract)
	if err != nil {
		return nil, fmt.Errorf("parsing extract for %q: %w", title, err)
	}

	categories := make([]string, 0, len(page.Categories))
	for _, cat := range page.Categories {
		categories = append(categories, cat.Title)
	}

	return &domain.Article{
		Title:          page.Title,
		RawText:        text,
		RawSummary:     summary,
		URL:            page.FullURL,
		Categories:     categories,
		ReferenceCount: len(page.ExtLinks),
		ProcessedAt:    time.Now(),
	}, nil
}

func (c *Client) queryURL(title string) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("prop", "extracts|categories|extlinks|info")
	params.Set("inprop", "url")
	params.Set("cllimit", "max")
	params.Set("ellimit", "max")
	return c.baseURL + "?" + params.Encode()
}
