package driven

import "context"

// PageFetcher retrieves the HTML of a ticket page. A failed fetch is
// reported once and not retried by the core; the capture attempt is
// simply aborted.
type PageFetcher interface {
	// FetchPage returns the page body as text. Implementations wrap
	// network and HTTP failures in domain.ErrFetchFailed.
	FetchPage(ctx context.Context, url string) (string, error)
}
