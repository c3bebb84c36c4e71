package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/dates"
)

var addCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Capture an event from a ticket page",
	Long: `Captures an event into the collection.
Without arguments the link prompt is prefilled from the clipboard.
With a URL argument the page is captured directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if captureService == nil {
		return errors.New("capture service not configured")
	}

	ctx := context.Background()

	var (
		event *domain.Event
		err   error
	)
	if len(args) > 0 {
		event, err = captureService.CaptureFromURL(ctx, args[0], "")
	} else {
		event, err = captureService.Capture(ctx)
	}

	switch {
	case errors.Is(err, domain.ErrCancelled):
		cmd.Println("Aborted.")
		return nil
	case errors.Is(err, domain.ErrDuplicateEvent):
		cmd.Println("Not added: an event with the same date or link already exists.")
		return nil
	case err != nil:
		return err
	}

	cmd.Printf("%s %s\n", event.Status.Icon(), event.Title)
	if loc := event.Location(", "); loc != "" {
		cmd.Printf("   %s\n", loc)
	}
	cmd.Printf("   %s\n", dates.FormatList(event.Date, displayZone))
	return nil
}
