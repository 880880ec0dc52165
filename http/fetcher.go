// Package http provides an HTTP-based implementation of docdex.Fetcher for
// retrieving static reference pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"docdex"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. A hang in
// the remote site must not block the whole crawl.
const DefaultFetchTimeout = 10 * time.Second

const userAgent = "docdex/1.0"

// Ensure Fetcher implements docdex.Fetcher at compile time.
var _ docdex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Transport failures,
// timeouts and non-200 responses are reported as EEXTERNAL so callers can
// treat them as skip-and-continue.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docdex.Errorf(docdex.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", docdex.Errorf(docdex.EEXTERNAL, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", docdex.Errorf(docdex.EEXTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", docdex.Errorf(docdex.EEXTERNAL, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
