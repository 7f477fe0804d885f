// Package http provides HTTP implementations of sitesmith's fetching and
// site-policy interfaces for static sites that don't require JavaScript
// rendering.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"sitesmith"
)

// Fetch policy defaults.
const (
	// DefaultFetchTimeout is the total per-attempt timeout.
	DefaultFetchTimeout = 15 * time.Second

	// DefaultAttempts is the retry ceiling for retryable failures.
	DefaultAttempts = 3

	// DefaultRetryDelay is the base delay between retries; server errors
	// back off linearly (base × attempt number).
	DefaultRetryDelay = 1 * time.Second

	// defaultRetryAfter applies when a 429 response has no usable
	// Retry-After header.
	defaultRetryAfter = 5 * time.Second
)

// UserAgent identifies the crawler on every outbound request.
const UserAgent = "sitesmith/1.0 (Website Research Bot)"

// Ensure Fetcher implements sitesmith.Fetcher at compile time.
var _ sitesmith.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over HTTP with bounded retries and
// status-code-aware backoff. Redirects are followed transparently.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	attempts   int
	retryDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAttempts sets the retry ceiling. Defaults to DefaultAttempts.
func WithAttempts(n int) Option {
	return func(f *Fetcher) {
		f.attempts = n
	}
}

// WithRetryDelay sets the base retry delay. Useful for testing without
// waiting for real delays.
func WithRetryDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelay = d
	}
}

// NewFetcher creates a new retrying HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		attempts:   DefaultAttempts,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. The returned error,
// if any, is a classified *sitesmith.FetchError (see sitesmith.FetchReason):
//
//	200        body returned immediately
//	429        sleep for Retry-After (default 5s), then retry
//	401/403    terminal access_denied, no retry
//	404        terminal not_found, no retry
//	>=500      retry with linear backoff up to the attempt ceiling
//	other      terminal http_<code>, no retry
//	timeout    retry with fixed delay; final failure is "timeout"
//	transport  retry with fixed delay; final failure is "client_error"
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastReason string
	var lastStatus int

	for attempt := 1; attempt <= f.attempts; attempt++ {
		html, status, header, err := f.do(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return "", &sitesmith.FetchError{URL: url, Reason: sitesmith.ReasonTimeout}
			}
			lastReason, lastStatus = classifyTransport(err), 0
			if attempt < f.attempts {
				if err := sleep(ctx, f.retryDelay); err != nil {
					break
				}
			}
			continue
		}

		switch {
		case status == http.StatusOK:
			return html, nil

		case status == http.StatusTooManyRequests:
			lastReason, lastStatus = sitesmith.ReasonRateLimited, status
			if err := sleep(ctx, retryAfter(header)); err != nil {
				return "", &sitesmith.FetchError{URL: url, Reason: lastReason, Status: status}
			}

		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return "", &sitesmith.FetchError{URL: url, Reason: sitesmith.ReasonAccessDenied, Status: status}

		case status == http.StatusNotFound:
			return "", &sitesmith.FetchError{URL: url, Reason: sitesmith.ReasonNotFound, Status: status}

		case status >= 500:
			lastReason, lastStatus = sitesmith.ReasonServerError, status
			if attempt < f.attempts {
				if err := sleep(ctx, f.retryDelay*time.Duration(attempt)); err != nil {
					return "", &sitesmith.FetchError{URL: url, Reason: lastReason, Status: status}
				}
			}

		default:
			return "", &sitesmith.FetchError{URL: url, Reason: fmt.Sprintf("http_%d", status), Status: status}
		}
	}

	if lastReason == "" {
		lastReason = sitesmith.ReasonClientError
	}
	return "", &sitesmith.FetchError{URL: url, Reason: lastReason, Status: lastStatus}
}

// do performs a single HTTP attempt.
func (f *Fetcher) do(ctx context.Context, url string) (string, int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", resp.StatusCode, resp.Header, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, nil, err
	}

	return string(body), resp.StatusCode, resp.Header, nil
}

// classifyTransport separates timeouts from other transport failures.
func classifyTransport(err error) string {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return sitesmith.ReasonTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return sitesmith.ReasonTimeout
	}
	return sitesmith.ReasonClientError
}

// retryAfter reads the Retry-After header as whole seconds, falling back
// to defaultRetryAfter.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return defaultRetryAfter
	}
	v := h.Get("Retry-After")
	if v == "" {
		return defaultRetryAfter
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}

// sleep waits for d or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
