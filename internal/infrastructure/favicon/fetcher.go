// Package favicon provides favicon fetching and caching infrastructure.
package favicon

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/favbuddy/internal/logging"
)

const (
	// DomainPlaceholder is substituted with the host in provider URL templates.
	DomainPlaceholder = "{domain}"
	// defaultContentType is used when the provider does not declare one.
	defaultContentType = "image/png"
)

// ErrFetchStatus is returned when the provider answers with a non-2xx status.
var ErrFetchStatus = errors.New("favicon provider returned non-success status")

// Fetcher retrieves favicons from an icon provider URL template.
type Fetcher struct {
	client    *http.Client
	template  string
	userAgent string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.client = &http.Client{Timeout: timeout, Transport: f.client.Transport}
	}
}

// WithUserAgent sets the User-Agent header sent to the provider.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a Fetcher for a URL template containing {domain}.
func NewFetcher(template string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:   &http.Client{},
		template: template,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ExpandTemplate substitutes host into every {domain} placeholder.
func ExpandTemplate(template, host string) string {
	return strings.ReplaceAll(template, DomainPlaceholder, host)
}

// URLFor returns the provider URL for host.
func (f *Fetcher) URLFor(host string) string {
	return ExpandTemplate(f.template, host)
}

// Fetch retrieves the icon for host and returns it as a data URI.
// Any non-2xx status or transport error is returned as an error.
func (f *Fetcher) Fetch(ctx context.Context, host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("empty host")
	}

	log := logging.FromContext(ctx)
	faviconURL := f.URLFor(host)

	log.Debug().Str("url", faviconURL).Msg("fetching favicon")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, faviconURL, http.NoBody)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create favicon request")
		return "", fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("host", host).Msg("failed to fetch favicon")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug().Int("status", resp.StatusCode).Str("host", host).Msg("favicon provider returned non-success status")
		return "", fmt.Errorf("%w: HTTP %s", ErrFetchStatus, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug().Err(err).Str("host", host).Msg("failed to read favicon response")
		return "", fmt.Errorf("read body: %w", err)
	}

	log.Debug().Str("host", host).Int("bytes", len(data)).Msg("favicon fetched")
	return EncodeDataURI(resp.Header.Get("Content-Type"), data), nil
}

// EncodeDataURI builds data:<mime>;base64,<data>. An empty mime falls back to image/png.
func EncodeDataURI(mime string, data []byte) string {
	mime = strings.TrimSpace(mime)
	if mime == "" {
		mime = defaultContentType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
