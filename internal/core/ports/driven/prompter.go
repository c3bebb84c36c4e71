package driven

import "context"

// Prompter is the interactive prompt surface the capture and edit flows
// consume. The core never renders UI itself; it only interprets the
// decisions coming back.
//
// Cancellation is an ordinary result, not a sentinel value: ok == false
// means the user dismissed the prompt, and flows treat that as abandoning
// the operation before any store mutation.
type Prompter interface {
	// Input asks for a single line of free text. initial prefills the
	// field; placeholder is shown when the field is empty.
	Input(ctx context.Context, title, placeholder, initial string) (value string, ok bool, err error)

	// Choose presents options and returns the selected index.
	Choose(ctx context.Context, title string, options []string) (index int, ok bool, err error)

	// Confirm asks a yes/no question. Dismissing the prompt counts as no.
	Confirm(ctx context.Context, title, message string) (bool, error)

	// Notify shows a message that only needs acknowledgement.
	Notify(ctx context.Context, message string) error
}
