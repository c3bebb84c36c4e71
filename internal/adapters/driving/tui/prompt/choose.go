package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// chooseModel presents a vertical list of options.
type chooseModel struct {
	styles    *Styles
	title     string
	options   []string
	cursor    int
	done      bool
	cancelled bool
}

func newChooseModel(s *Styles, title string, options []string) chooseModel {
	return chooseModel{
		styles:  s,
		title:   title,
		options: options,
	}
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + option))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + option))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓: move · enter: select · esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
