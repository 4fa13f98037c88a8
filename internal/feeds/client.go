// Package feeds fetches the motivational quote and the tech headlines from
// public read-only web APIs. Every upstream failure degrades to "no value";
// nothing here may abort the local data flow.
package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dmarques/skilltrack/internal/logging"
)

const userAgent = "skilltrack/1.0 (+local)"

// maxBodySize caps response reads; the upstream payloads are tiny.
const maxBodySize = 1 << 20

// Client performs bounded-timeout HTTPS GETs against the quote and headline
// sources. Endpoint URLs are fields so tests can point them at local servers.
type Client struct {
	http *http.Client
	log  logging.Logger

	quoteURL   string
	adviceURL  string
	hnTopURL   string
	hnItemURL  string // expects one %d verb for the item id
	algoliaURL string
}

// NewClient returns a Client with production endpoints and the given request
// timeout.
func NewClient(timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		log:  log,

		quoteURL:   "https://zenquotes.io/api/random",
		adviceURL:  "https://api.adviceslip.com/advice",
		hnTopURL:   "https://hacker-news.firebaseio.com/v0/topstories.json",
		hnItemURL:  "https://hacker-news.firebaseio.com/v0/item/%d.json",
		algoliaURL: "https://hn.algolia.com/api/v1/search?tags=front_page",
	}
}

// getJSON performs one GET and returns the body when the response is an
// HTTP 200 carrying valid JSON.
func (c *Client) getJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("get %s: response is not JSON", url)
	}
	return body, nil
}
