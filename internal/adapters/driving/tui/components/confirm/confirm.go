// Package confirm provides a yes/no confirmation prompt component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/styles"
)

// Model is a single yes/no question. Answering any key resolves it:
// y accepts, everything else declines.
type Model struct {
	styles   *styles.Styles
	question string

	answered bool
	accepted bool
	aborted  bool
}

// New creates a confirmation prompt for the given question.
func New(question string, s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return Model{
		styles:   s,
		question: question,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.answered = true
		m.accepted = true
		return m, tea.Quit
	case "ctrl+c":
		m.answered = true
		m.aborted = true
		return m, tea.Quit
	default:
		// Anything but an explicit yes declines.
		m.answered = true
		return m, tea.Quit
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.answered {
		answer := "no"
		if m.accepted {
			answer = "yes"
		}
		return m.styles.Normal.Render(m.question) + " " + m.styles.Muted.Render(answer) + "\n"
	}
	return m.styles.Normal.Render(m.question) + " " + m.styles.Help.Render("[y/N]") + " "
}

// Accepted reports whether the user answered yes.
func (m Model) Accepted() bool {
	return m.accepted
}

// Aborted reports whether the prompt was interrupted.
func (m Model) Aborted() bool {
	return m.aborted
}
