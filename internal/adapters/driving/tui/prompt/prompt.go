// Package prompt implements the interactive prompt surface with
// bubbletea. Every prompt is a small self-contained program: it renders,
// collects one decision, and quits. Dismissing a prompt (esc, ctrl+c)
// reports ok == false rather than an error.
package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
)

// Ensure Prompter implements the interface.
var _ driven.Prompter = (*Prompter)(nil)

// Styles contains the lipgloss styles shared by all prompt models.
type Styles struct {
	Title    lipgloss.Style
	Field    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Help     lipgloss.Style
	Notice   lipgloss.Style
}

// DefaultStyles returns the default prompt styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),

		Field: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CDD6F4")).
			Background(lipgloss.Color("#7C3AED")),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),

		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")),
	}
}

// Prompter renders interactive prompts on the terminal.
type Prompter struct {
	styles *Styles
	output io.Writer
}

// New creates a terminal prompter writing to stderr so prompt chrome
// never mixes with command output on stdout.
func New() *Prompter {
	return &Prompter{styles: DefaultStyles(), output: os.Stderr}
}

// NewWithOutput creates a prompter writing to the given writer.
func NewWithOutput(w io.Writer) *Prompter {
	return &Prompter{styles: DefaultStyles(), output: w}
}

// Input asks for a single line of free text.
func (p *Prompter) Input(ctx context.Context, title, placeholder, initial string) (string, bool, error) {
	model := newInputModel(p.styles, title, placeholder, initial)
	final, err := p.run(ctx, model)
	if err != nil {
		return "", false, err
	}

	m, ok := final.(inputModel)
	if !ok || m.cancelled {
		return "", false, nil
	}
	return m.Value(), true, nil
}

// Choose presents options and returns the selected index.
func (p *Prompter) Choose(ctx context.Context, title string, options []string) (int, bool, error) {
	if len(options) == 0 {
		return 0, false, nil
	}

	model := newChooseModel(p.styles, title, options)
	final, err := p.run(ctx, model)
	if err != nil {
		return 0, false, err
	}

	m, ok := final.(chooseModel)
	if !ok || m.cancelled {
		return 0, false, nil
	}
	return m.cursor, true, nil
}

// Confirm asks a yes/no question. Dismissing the prompt counts as no.
func (p *Prompter) Confirm(ctx context.Context, title, message string) (bool, error) {
	model := newConfirmModel(p.styles, title, message)
	final, err := p.run(ctx, model)
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok || m.cancelled {
		return false, nil
	}
	return m.yes, nil
}

// Notify shows a message that only needs acknowledgement.
func (p *Prompter) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(p.output, p.styles.Notice.Render(message))
	return err
}

// run executes a prompt program and returns its final model.
func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}
