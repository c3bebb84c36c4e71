// Package cli implements the gigfolio command line interface with cobra.
// Services are injected by the composition root before Execute runs;
// commands fail with a plain error when their service is missing.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driving"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	captureService    driving.CaptureService
	collectionService driving.CollectionService
	calendarWriter    driven.CalendarWriter
	prompter          driven.Prompter
	collectionWatcher Watcher

	// displayZone is the zone list output renders dates in.
	displayZone = time.UTC
)

// Watcher notifies about external changes to the backing collection
// file. Only the file store provides one; watch-enabled commands
// degrade gracefully without it.
type Watcher interface {
	Watch(ctx context.Context, onChange func()) error
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gigfolio",
	Short: "Track concert and event tickets from the terminal",
	Long: `gigfolio keeps a personal collection of concerts and events.
Paste a ticket page link and gigfolio extracts the title, venue, city
and date, asks for confirmation, and files the event into a sorted,
de-duplicated collection.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetCaptureService injects the capture flow used by add.
func SetCaptureService(s driving.CaptureService) {
	captureService = s
}

// SetCollectionService injects the collection used by list, widget,
// edit, remove and export.
func SetCollectionService(s driving.CollectionService) {
	collectionService = s
}

// SetCalendarWriter injects the calendar export target.
func SetCalendarWriter(w driven.CalendarWriter) {
	calendarWriter = w
}

// SetPrompter injects the interactive prompt surface used by edit and
// destructive confirmations.
func SetPrompter(p driven.Prompter) {
	prompter = p
}

// SetWatcher injects the collection change watcher used by widget --watch.
func SetWatcher(w Watcher) {
	collectionWatcher = w
}

// SetDisplayZone sets the timezone list output renders dates in.
func SetDisplayZone(loc *time.Location) {
	if loc != nil {
		displayZone = loc
	}
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
