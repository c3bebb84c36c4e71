package driven

import (
	"context"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

// CalendarWriter exports a single event to a calendar file the host
// calendar application can import.
type CalendarWriter interface {
	// WriteEvent writes the event and returns the path of the written file.
	WriteEvent(ctx context.Context, e domain.Event) (string, error)
}
