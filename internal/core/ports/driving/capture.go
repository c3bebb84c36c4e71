package driving

import (
	"context"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

// CaptureService runs the add-event flow: obtain a source URL, fetch and
// extract the page, resolve the date with the user, pick a status, and
// commit the event. The flow mutates the collection only as its final
// step, so abandoning it at any prompt leaves no trace.
type CaptureService interface {
	// Capture starts from the clipboard: a pasted URL prefills the link
	// prompt and any leading text becomes the title hint. Returns
	// domain.ErrCancelled when the user abandons the flow and
	// domain.ErrDuplicateEvent when the final insert is rejected.
	Capture(ctx context.Context) (*domain.Event, error)

	// CaptureFromURL skips the link prompt and captures the given page
	// directly. titleHint may be empty.
	CaptureFromURL(ctx context.Context, url, titleHint string) (*domain.Event, error)
}
