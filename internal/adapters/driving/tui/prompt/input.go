package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel collects a single line of text.
type inputModel struct {
	styles    *Styles
	title     string
	textinput textinput.Model
	done      bool
	cancelled bool
}

func newInputModel(s *Styles, title, placeholder, initial string) inputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 60
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return inputModel{
		styles:    s,
		title:     title,
		textinput: ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.styles.Title.Render(m.title) + "\n" +
		m.styles.Field.Render(m.textinput.View()) + "\n" +
		m.styles.Help.Render("enter: confirm · esc: cancel") + "\n"
}

// Value returns the entered text.
func (m inputModel) Value() string {
	return m.textinput.Value()
}
