package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/adapters/driven/calendar/ics"
	"github.com/gigfolio/gigfolio-cli/internal/adapters/driven/clipboard"
	configfile "github.com/gigfolio/gigfolio-cli/internal/adapters/driven/config/file"
	"github.com/gigfolio/gigfolio-cli/internal/adapters/driven/fetch"
	storagefile "github.com/gigfolio/gigfolio-cli/internal/adapters/driven/storage/file"
	"github.com/gigfolio/gigfolio-cli/internal/adapters/driven/storage/sqlite"
	"github.com/gigfolio/gigfolio-cli/internal/adapters/driving/cli"
	"github.com/gigfolio/gigfolio-cli/internal/adapters/driving/tui/prompt"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
	"github.com/gigfolio/gigfolio-cli/internal/core/services"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// version is injected at build time via ldflags.
var version = "dev"

const defaultTimezone = "Europe/Berlin"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	zone, err := loadZone(config.GetString("locale.timezone"))
	if err != nil {
		return err
	}

	store, watcher, err := openStore(config)
	if err != nil {
		return err
	}

	collection, err := services.OpenCollection(ctx, store)
	if err != nil {
		return err
	}

	prompter := prompt.New()
	capture := services.NewCaptureService(
		fetch.New(fetch.Config{}),
		clipboard.New(),
		prompter,
		collection,
		zone,
	)

	writer := ics.NewWriter(
		config.GetString("calendar.output_dir"),
		config.GetInt("calendar.event_hours"),
	)

	cli.SetVersion(version)
	cli.SetDisplayZone(zone)
	cli.SetCollectionService(collection)
	cli.SetCaptureService(capture)
	cli.SetCalendarWriter(writer)
	cli.SetPrompter(prompter)
	if watcher != nil {
		cli.SetWatcher(watcher)
	}

	return cli.Execute()
}

// openStore selects the collection backend from configuration. Only the
// file backend supports change watching.
func openStore(config driven.ConfigStore) (driven.CollectionStore, cli.Watcher, error) {
	dataDir := config.GetString("collection.path")

	switch backend := config.GetString("collection.backend"); backend {
	case "sqlite":
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, nil, nil
	case "", "file":
		store, err := storagefile.NewCollectionStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening collection store: %w", err)
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown collection backend %q", backend)
	}
}

func loadZone(name string) (*time.Location, error) {
	if name == "" {
		name = defaultTimezone
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("unknown timezone %q, falling back to UTC", name)
		return time.UTC, nil
	}
	return zone, nil
}
