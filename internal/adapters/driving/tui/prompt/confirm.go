package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel asks a yes/no question.
type confirmModel struct {
	styles    *Styles
	title     string
	message   string
	yes       bool
	done      bool
	cancelled bool
}

func newConfirmModel(s *Styles, title, message string) confirmModel {
	return confirmModel{
		styles:  s,
		title:   title,
		message: message,
		yes:     true,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "y":
		m.yes = true
		m.done = true
		return m, tea.Quit
	case "n":
		m.yes = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	yes := "  Yes  "
	no := "  No  "
	if m.yes {
		yes = m.styles.Selected.Render(yes)
		no = m.styles.Normal.Render(no)
	} else {
		yes = m.styles.Normal.Render(yes)
		no = m.styles.Selected.Render(no)
	}

	return m.styles.Title.Render(m.title) + "\n" +
		m.styles.Normal.Render(m.message) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Center, yes, " ", no) + "\n" +
		m.styles.Help.Render("y/n · enter: confirm · esc: cancel") + "\n"
}
