package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// debounceWindow coalesces the write+rename burst an atomic save produces
// into a single onChange call.
const debounceWindow = 200 * time.Millisecond

// Watch invokes onChange whenever the collection file is rewritten, until
// ctx is done. The collection file is saved by rename, so the watch is on
// the containing directory, filtered to the events file. Used by the
// widget view to re-render when another process (or a synced copy)
// updates the collection.
func (s *CollectionStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		return err
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	fire := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pending:
			onChange()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, fire)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("collection watch error: %v", err)
		}
	}
}
