package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driving"
	"github.com/gigfolio/gigfolio-cli/internal/dates"
	"github.com/gigfolio/gigfolio-cli/internal/extract"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// Ensure CaptureService implements the interface.
var _ driving.CaptureService = (*CaptureService)(nil)

// Prompt defaults when neither the page nor a rejected candidate provides
// a date to prefill.
const (
	defaultDateInput = "20.09.2025"
	defaultTimeInput = "20:00"
)

// CaptureService implements the add-event flow. It is strictly sequential
// and mutates the collection only as its final step: cancelling any
// prompt abandons the flow with the persisted state untouched.
type CaptureService struct {
	fetcher    driven.PageFetcher
	clipboard  driven.Clipboard
	prompter   driven.Prompter
	collection driving.CollectionService
	zone       *time.Location
}

// NewCaptureService creates the capture flow. clipboard may be nil; the
// link prompt simply starts empty then. zone is the venue timezone civil
// times are interpreted in; nil means UTC.
func NewCaptureService(
	fetcher driven.PageFetcher,
	clipboard driven.Clipboard,
	prompter driven.Prompter,
	collection driving.CollectionService,
	zone *time.Location,
) *CaptureService {
	if zone == nil {
		zone = time.UTC
	}
	return &CaptureService{
		fetcher:    fetcher,
		clipboard:  clipboard,
		prompter:   prompter,
		collection: collection,
		zone:       zone,
	}
}

// Capture starts from the clipboard and prompts for the ticket-page link.
func (s *CaptureService) Capture(ctx context.Context) (*domain.Event, error) {
	var prefill, hint string
	if s.clipboard != nil {
		clip, err := s.clipboard.Read()
		if err != nil {
			logger.Warn("clipboard read failed: %v", err)
		} else {
			prefill, hint = extract.ParseClipboard(clip)
		}
	}

	url, ok, err := s.prompter.Input(ctx, "Add event", "Ticket page link", prefill)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCancelled
	}

	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http") {
		return nil, fmt.Errorf("%w: not a link: %q", domain.ErrInvalidInput, url)
	}
	return s.CaptureFromURL(ctx, url, hint)
}

// CaptureFromURL fetches and extracts the page, resolves the date and
// status with the user, and commits the event.
func (s *CaptureService) CaptureFromURL(ctx context.Context, url, titleHint string) (*domain.Event, error) {
	html, err := s.fetcher.FetchPage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	page := extract.Extract(html, url, titleHint)

	date, err := s.resolveDate(ctx, page.CandidateDate)
	if err != nil {
		return nil, err
	}

	status, err := s.chooseStatus(ctx)
	if err != nil {
		return nil, err
	}

	event := domain.Event{
		Title:  page.Title,
		URL:    url,
		Date:   date,
		Status: status,
		City:   page.City,
		Venue:  page.Venue,
	}
	if err := s.collection.Add(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

// resolveDate turns the extraction candidate into a confirmed absolute
// instant, falling back to manual entry. Manual input is strict: format
// and calendar failures re-prompt with the rejected text kept in the
// field, never auto-corrected.
func (s *CaptureService) resolveDate(ctx context.Context, candidate *domain.CivilDateTime) (time.Time, error) {
	dateInput, timeInput := defaultDateInput, defaultTimeInput

	if candidate != nil {
		dateInput, timeInput = candidate.DateString(), candidate.TimeString()

		// A page can carry a date token that names no real calendar day;
		// offer it for confirmation only if it survives strict parsing.
		if _, err := dates.ParseCivil(dateInput, timeInput); err == nil {
			instant := candidate.In(s.zone)
			ok, err := s.prompter.Confirm(ctx, "Date found", dates.FormatList(instant, s.zone))
			if err != nil {
				return time.Time{}, err
			}
			if ok {
				return instant, nil
			}
		} else {
			logger.Debug("page date candidate rejected: %v", err)
		}
	}

	for {
		dateStr, ok, err := s.prompter.Input(ctx, "Enter date", "DD.MM.YYYY", dateInput)
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			return time.Time{}, domain.ErrCancelled
		}

		timeStr, ok, err := s.prompter.Input(ctx, "Enter time", "HH:MM", timeInput)
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			return time.Time{}, domain.ErrCancelled
		}

		instant, err := dates.Compose(dateStr, timeStr, s.zone)
		if err == nil {
			return instant, nil
		}

		var formatErr *domain.FormatError
		if errors.As(err, &formatErr) || errors.Is(err, domain.ErrInvalidDate) {
			if nerr := s.prompter.Notify(ctx, err.Error()); nerr != nil {
				return time.Time{}, nerr
			}
			dateInput, timeInput = dateStr, timeStr
			continue
		}
		return time.Time{}, err
	}
}

// chooseStatus asks whether a ticket is held or the event is just watched.
func (s *CaptureService) chooseStatus(ctx context.Context) (domain.Status, error) {
	index, ok, err := s.prompter.Choose(ctx, "Status", []string{"✅ Ticket", "⭐️ Interest"})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrCancelled
	}
	if index == 0 {
		return domain.StatusTicket, nil
	}
	return domain.StatusInterest, nil
}
