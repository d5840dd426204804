// Package fetch retrieves feed documents over HTTP or from the local
// filesystem. It is the upstream collaborator of the parser: bytes in
// document order, no conditional-GET handling.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client fetches feed documents.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a fetcher with the given User-Agent and timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Open returns a stream for ref: an http(s) URL or a local file path.
// The caller closes the returned reader.
func (c *Client) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return c.openURL(ctx, ref)
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	return f, nil
}

func (c *Client) openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected HTTP status %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
