package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/dates"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

var (
	widgetCount int
	widgetWatch bool
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Show the next events in a compact widget format",
	Long: `Prints a compact view of the next upcoming events, suitable for
status bars and dashboard widgets. With --watch the view re-renders
whenever the collection file changes on disk.`,
	RunE: runWidget,
}

func init() {
	widgetCmd.Flags().IntVarP(&widgetCount, "count", "n", 3, "number of events to show")
	widgetCmd.Flags().BoolVarP(&widgetWatch, "watch", "w", false, "re-render when the collection changes")
	rootCmd.AddCommand(widgetCmd)
}

func runWidget(cmd *cobra.Command, _ []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	renderWidget(cmd)

	if !widgetWatch {
		return nil
	}
	if collectionWatcher == nil {
		return errors.New("watching is only available with the file backend")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onChange := func() {
		if err := collectionService.Reload(ctx); err != nil {
			logger.Warn("reload after change failed: %v", err)
			return
		}
		cmd.Println()
		renderWidget(cmd)
	}

	logger.Info("watching collection for changes")
	if err := collectionWatcher.Watch(ctx, onChange); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watching collection: %w", err)
	}
	return nil
}

func renderWidget(cmd *cobra.Command) {
	upcoming := collectionService.Upcoming(time.Now())
	if len(upcoming) == 0 {
		cmd.Println("No upcoming events")
		return
	}

	count := widgetCount
	if count < 1 {
		count = 1
	}
	if count > len(upcoming) {
		count = len(upcoming)
	}

	for _, event := range upcoming[:count] {
		cmd.Printf("%s %s\n", event.Status.Icon(), event.Title)
		if loc := event.Location(", "); loc != "" {
			cmd.Printf("   %s\n", loc)
		}
		cmd.Printf("   %s\n", dates.FormatList(event.Date, displayZone))
	}
	if remaining := len(upcoming) - count; remaining > 0 {
		cmd.Printf("   … and %d more\n", remaining)
	}
}
