package driven

// Clipboard reads the system clipboard to prefill the capture flow.
type Clipboard interface {
	// Read returns the clipboard text. Implementations on platforms
	// without clipboard access return an empty string and no error.
	Read() (string, error)
}
