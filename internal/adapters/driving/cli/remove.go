package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigfolio/gigfolio-cli/internal/dates"
)

var removeAll bool

var removeCmd = &cobra.Command{
	Use:   "remove [index]",
	Short: "Remove an event from the collection",
	Long: `Removes the event at the given list position.
With --all the whole collection is cleared after confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every event")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	ctx := context.Background()

	if removeAll {
		return runClear(ctx, cmd)
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

	if prompter != nil {
		question := fmt.Sprintf("%s, %s", event.Title, dates.FormatList(event.Date, displayZone))
		confirmed, err := prompter.Confirm(ctx, "Remove event?", question)
		if err != nil {
			return err
		}
		if !confirmed {
			cmd.Println("Aborted.")
			return nil
		}
	}

	removed, err := collectionService.Remove(ctx, index)
	if err != nil {
		return err
	}

	cmd.Printf("Removed: %s\n", removed.Title)
	return nil
}

func runClear(ctx context.Context, cmd *cobra.Command) error {
	total := len(collectionService.Events())
	if total == 0 {
		cmd.Println("The collection is already empty.")
		return nil
	}

	if prompter != nil {
		question := fmt.Sprintf("This deletes all %d events.", total)
		confirmed, err := prompter.Confirm(ctx, "Clear collection?", question)
		if err != nil {
			return err
		}
		if !confirmed {
			cmd.Println("Aborted.")
			return nil
		}
	}

	removed, err := collectionService.Clear(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Removed %d events.\n", removed)
	return nil
}
