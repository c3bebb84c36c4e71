package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/dates"
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an event",
	Long: `Edits the event at the given list position. Every field is
prompted prefilled with its current value; submitting unchanged values
leaves the field alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}
	if prompter == nil {
		return errors.New("prompter not configured")
	}

	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	event, err := collectionService.Get(index)
	if err != nil {
		return err
	}

	patch, ok, err := promptPatch(ctx, event)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("Aborted.")
		return nil
	}
	if patch.IsEmpty() {
		cmd.Println("Nothing changed.")
		return nil
	}

	updated, err := collectionService.Edit(ctx, index, patch)
	if err != nil {
		return err
	}

	cmd.Printf("Updated: %s %s, %s\n", updated.Status.Icon(), updated.Title, dates.FormatList(updated.Date, displayZone))
	return nil
}

// promptPatch walks through the editable fields. ok == false means the
// user cancelled at some prompt; the collection is untouched in that case.
func promptPatch(ctx context.Context, event domain.Event) (domain.EventPatch, bool, error) {
	var patch domain.EventPatch

	title, ok, err := prompter.Input(ctx, "Title", "", event.Title)
	if err != nil || !ok {
		return patch, ok, err
	}
	if title != event.Title && title != "" {
		patch.Title = &title
	}

	dateStr, timeStr := dates.CivilStrings(event.Date, displayZone)
	newDate, ok, err := promptDate(ctx, dateStr, timeStr)
	if err != nil || !ok {
		return patch, ok, err
	}
	if !newDate.Equal(event.Date) {
		patch.Date = &newDate
	}

	statusIndex := 0
	if event.Status == domain.StatusInterest {
		statusIndex = 1
	}
	choice, ok, err := prompter.Choose(ctx, "Status", []string{"✅ Ticket", "⭐️ Interest"})
	if err != nil || !ok {
		return patch, ok, err
	}
	if choice != statusIndex {
		status := domain.StatusTicket
		if choice == 1 {
			status = domain.StatusInterest
		}
		patch.Status = &status
	}

	venue, ok, err := prompter.Input(ctx, "Venue", "", event.Venue)
	if err != nil || !ok {
		return patch, ok, err
	}
	if venue != event.Venue {
		patch.Venue = &venue
	}

	city, ok, err := prompter.Input(ctx, "City", "", event.City)
	if err != nil || !ok {
		return patch, ok, err
	}
	if city != event.City {
		patch.City = &city
	}

	return patch, true, nil
}

// promptDate asks for date and time until both parse or the user cancels.
func promptDate(ctx context.Context, dateStr, timeStr string) (date time.Time, ok bool, err error) {
	for {
		newDateStr, ok, err := prompter.Input(ctx, "Date", "DD.MM.YYYY", dateStr)
		if err != nil || !ok {
			return date, ok, err
		}
		newTimeStr, ok, err := prompter.Input(ctx, "Time", "HH:MM", timeStr)
		if err != nil || !ok {
			return date, ok, err
		}

		composed, err := dates.Compose(newDateStr, newTimeStr, displayZone)
		if err == nil {
			return composed, true, nil
		}

		var formatErr *domain.FormatError
		switch {
		case errors.As(err, &formatErr):
			if nerr := prompter.Notify(ctx, fmt.Sprintf("Invalid %s format, expected %s.", formatErr.Part, formatHint(formatErr.Part))); nerr != nil {
				return date, false, nerr
			}
		case errors.Is(err, domain.ErrInvalidDate):
			if nerr := prompter.Notify(ctx, "That calendar date does not exist."); nerr != nil {
				return date, false, nerr
			}
		default:
			return date, false, err
		}

		// Keep the rejected input so it can be corrected in place.
		dateStr, timeStr = newDateStr, newTimeStr
	}
}

func formatHint(part string) string {
	if part == domain.FormatPartTime {
		return "HH:MM"
	}
	return "DD.MM.YYYY"
}

// parseIndex converts a 1-based list position to a zero-based index.
func parseIndex(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil || position < 1 {
		return 0, fmt.Errorf("%w: %q is not a valid list position", domain.ErrInvalidInput, arg)
	}
	return position - 1, nil
}
