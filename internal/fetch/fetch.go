// Package fetch downloads the published document markup.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const UserAgent = "gdocdecode/1.0 (+https://github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder)"

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// Client issues a single GET per call. It never retries.
type Client struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewClient returns a client with no timeout. maxBytes <= 0 disables the
// body size limit.
func NewClient(maxBytes int64) *Client {
	return NewClientWithTimeout(0, maxBytes)
}

func NewClientWithTimeout(timeout time.Duration, maxBytes int64) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: UserAgent,
		maxBytes:  maxBytes,
	}
}

// Get fetches rawURL and returns the response body as text.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	slog.Debug("fetching document", "url", rawURL)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := c.readBody(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	slog.Debug("fetched document", "url", rawURL, "bytes", len(body))
	return string(body), nil
}

func (c *Client) readBody(r io.Reader) ([]byte, error) {
	if c.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	// One byte past the limit separates an exact-size body from an oversized one.
	body, err := io.ReadAll(io.LimitReader(r, c.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", c.maxBytes)
	}
	return body, nil
}
