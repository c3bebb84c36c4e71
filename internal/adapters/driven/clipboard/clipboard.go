// Package clipboard adapts the system clipboard to the driven port.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.Clipboard = (*Reader)(nil)

// Reader reads the system clipboard via the platform clipboard tools.
type Reader struct{}

// New creates a clipboard reader.
func New() *Reader {
	return &Reader{}
}

// Read returns the clipboard text. On platforms without clipboard
// support it returns empty text so the capture flow starts from a blank
// prompt instead of failing.
func (r *Reader) Read() (string, error) {
	if clipboard.Unsupported {
		return "", nil
	}
	return clipboard.ReadAll()
}
