package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/dates"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	Long: `Lists the collection grouped by month, soonest first.
By default only upcoming events are shown; --all includes past ones.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include past events")
	rootCmd.AddCommand(listCmd)
}

var (
	monthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	pastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))
)

func runList(cmd *cobra.Command, _ []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	now := time.Now()
	events := collectionService.Events()
	if !listAll {
		events = collectionService.Upcoming(now)
	}

	if len(events) == 0 {
		if listAll {
			cmd.Println("No events in the collection.")
		} else {
			cmd.Println("No upcoming events. Add one with: gigfolio add")
		}
		return nil
	}

	// Indices are positions in the full, date-ordered collection so
	// they stay valid for edit/remove/export.
	offset := 0
	if !listAll {
		offset = len(collectionService.Past(now))
	}

	currentMonth := ""
	for i, event := range events {
		if key := dates.MonthKey(event.Date, displayZone); key != currentMonth {
			if currentMonth != "" {
				cmd.Println()
			}
			currentMonth = key
			cmd.Println(monthStyle.Render(dates.FormatMonthHeader(event.Date, displayZone)))
		}

		line := renderEventLine(offset+i+1, event, event.Date.Before(now))
		cmd.Println(line)
	}
	return nil
}

func renderEventLine(position int, event domain.Event, past bool) string {
	text := fmt.Sprintf("%4s %s %s  %s",
		fmt.Sprintf("[%d]", position),
		event.Status.Icon(),
		dates.FormatList(event.Date, displayZone),
		event.Title,
	)
	if loc := event.Location(", "); loc != "" {
		text += locationStyle.Render("  (" + loc + ")")
	}
	if past {
		return pastStyle.Render(text)
	}
	return text
}
