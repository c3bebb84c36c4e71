package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

var exportAll bool

var exportCmd = &cobra.Command{
	Use:   "export [index]",
	Short: "Export events as iCalendar files",
	Long: `Writes the event at the given list position as an .ics file.
With --all every upcoming event is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every upcoming event")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}
	if calendarWriter == nil {
		return errors.New("calendar writer not configured")
	}

	if exportAll {
		return exportEvents(cmd, collectionService.Upcoming(time.Now()))
	}
	if len(args) == 0 {
		return errors.New("provide a list position or --all")
	}

	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	event, err := collectionService.Get(index)
	if err != nil {
		return err
	}
	return exportEvents(cmd, []domain.Event{event})
}

func exportEvents(cmd *cobra.Command, events []domain.Event) error {
	if len(events) == 0 {
		cmd.Println("Nothing to export.")
		return nil
	}

	ctx := context.Background()
	for _, event := range events {
		path, err := calendarWriter.WriteEvent(ctx, event)
		if err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
	}
	return nil
}
