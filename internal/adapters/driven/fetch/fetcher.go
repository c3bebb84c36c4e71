// Package fetch retrieves ticket-page HTML over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// maxBodySize caps how much of a page is read. Ticket pages are well
// under this; anything larger is not a page we can extract from anyway.
const maxBodySize = 5 << 20

// Config controls the HTTP fetcher.
type Config struct {
	// UserAgent identifies the tool to the ticket site.
	UserAgent string

	// Timeout bounds a single page fetch.
	Timeout time.Duration

	// RequestDelay is the minimum gap between two fetches.
	RequestDelay time.Duration
}

// Fetcher is an HTTP implementation of driven.PageFetcher. There are no
// retries: a failed fetch aborts the capture attempt and is reported once.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a fetcher with conservative defaults.
func New(config Config) *Fetcher {
	if config.UserAgent == "" {
		config.UserAgent = "gigfolio-cli/1.0 (+https://github.com/gigfolio/gigfolio-cli)"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RequestDelay == 0 {
		config.RequestDelay = 2 * time.Second
	}

	return &Fetcher{
		client:    &http.Client{Timeout: config.Timeout},
		limiter:   rate.NewLimiter(rate.Every(config.RequestDelay), 1),
		userAgent: config.UserAgent,
	}
}

// FetchPage retrieves the page body as text. Network and HTTP failures
// are wrapped in domain.ErrFetchFailed.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}

	logger.Debug("fetched %s (%d bytes)", url, len(body))
	return string(body), nil
}
