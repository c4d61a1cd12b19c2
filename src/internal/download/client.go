// Package download fetches catalog pages and archives, verifies digests and
// unpacks archives into version directories
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/jinyuli/uvm/src/internal/ui"
)

// BrowserUserAgent is sent on every request. Some vendor pages refuse the
// default Go user agent.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"

// StatusError is returned when a server answers with a non-200 status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed (HTTP %s): %s", e.Status, e.URL)
}

// Client performs the HTTP requests of one invocation
type Client struct {
	http      *http.Client
	userAgent string
	progress  io.Writer
}

// Option configures a Client
type Option func(*Client)

// WithProgressOutput sets where download progress bars are drawn.
// A nil writer disables them.
func WithProgressOutput(w io.Writer) Option {
	return func(c *Client) {
		c.progress = w
	}
}

// WithTimeout bounds the duration of every request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// NewClient builds a client. A non-empty proxy is used for both HTTP and
// HTTPS requests.
func NewClient(proxy string, opts ...Option) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", proxy, err)
		}
		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, fmt.Errorf("invalid proxy %q: expected scheme://host:port", proxy)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		ui.Debug("Using proxy %s", proxyURL.Redacted())
	}

	c := &Client{
		http:      &http.Client{Transport: transport},
		userAgent: BrowserUserAgent,
		progress:  os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HTTPClient exposes the underlying client for API libraries that take one
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// GetText fetches a URL and returns its body as a string
func (c *Client) GetText(ctx context.Context, rawURL string) (string, error) {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	ui.Debug("Fetched %s (%d bytes)", rawURL, len(body))
	return string(body), nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	ui.Debug("GET %s", rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		ui.Debug("HTTP request failed: %v", err)
		return nil, fmt.Errorf("failed to connect: %w (URL: %s)", err, rawURL)
	}

	ui.Debug("HTTP response: %s", resp.Status)
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return resp, nil
}
