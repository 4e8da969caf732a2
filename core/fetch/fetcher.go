// Package fetch implements the Fetcher interface.
// Sources starting with http:// or https:// are fetched over HTTP with
// browser-like defaults; anything else is read as a local HTML file.
package fetch

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/docscraper/core"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultRetries   = 3
)

// RetryBaseDelay is the first backoff after an HTTP 429. It doubles on
// every further attempt. Tests override it to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// Options configures an HTTPFetcher. Zero values select the defaults.
type Options struct {
	Timeout            time.Duration
	UserAgent          string
	InsecureSkipVerify bool
	Retries            int
	Logger             *slog.Logger
}

// HTTPFetcher fetches pages over HTTP or from disk.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	retries   int
	logger    *slog.Logger
}

// New creates an HTTPFetcher from opts.
func New(opts Options) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		// opt-in via --no-verify-ssl
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &HTTPFetcher{
		client:    &http.Client{Timeout: opts.Timeout, Transport: transport},
		userAgent: opts.UserAgent,
		retries:   opts.Retries,
		logger:    opts.Logger,
	}
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch retrieves the HTML content of source.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%w: empty path", core.ErrInvalidSource)
	}
	if IsURL(source) {
		return f.fetchURL(ctx, source)
	}
	return readFile(source)
}

func (f *HTTPFetcher) fetchURL(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidSource, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d for %s", core.ErrHTTPStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", classify(url, err))
	}

	f.logger.Debug("fetched page", "url", url, "status", resp.StatusCode, "bytes", len(body))
	return &core.FetchResult{
		Source:     url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// doWithRetry executes req and retries HTTP 429 responses with exponential
// backoff. After the last retry the 429 response is returned as-is.
func (f *HTTPFetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := f.client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= f.retries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		f.logger.Info("rate limited, retrying", "url", req.URL.String(), "backoff", backoff, "attempt", attempt+1)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// classify maps transport failures onto the core sentinel errors.
func classify(url string, err error) error {
	var (
		certErr    *tls.CertificateVerificationError
		unknownCA  x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
		netErr     net.Error
	)
	switch {
	case errors.As(err, &certErr), errors.As(err, &unknownCA),
		errors.As(err, &hostErr), errors.As(err, &invalidErr):
		return fmt.Errorf("fetching %s: %w: %w", url, core.ErrTLSVerify, err)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("fetching %s: %w: %w", url, core.ErrTimeout, err)
	}
	return fmt.Errorf("fetching %s: %w", url, err)
}

// readFile loads a local HTML file.
func readFile(path string) (*core.FetchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", core.ErrInvalidSource, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &core.FetchResult{Source: path, HTML: string(data)}, nil
}
