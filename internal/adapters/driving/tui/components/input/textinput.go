// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/styles"
)

// ExerciseInput wraps a bubbles textinput for entering an exercise name.
type ExerciseInput struct {
	label     string
	textinput textinput.Model
	styles    *styles.Styles
	submitted bool
	aborted   bool
}

// NewExerciseInput creates a new exercise name input component.
func NewExerciseInput(label string, s *styles.Styles) *ExerciseInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. Bench Press (Barbell)"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &ExerciseInput{
		label:     label,
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the input.
func (e *ExerciseInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (e *ExerciseInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			e.submitted = true
			return e, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			e.aborted = true
			return e, tea.Quit
		}
	}

	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// View renders the input.
func (e *ExerciseInput) View() string {
	if e.submitted || e.aborted {
		return ""
	}
	label := e.styles.Title.Render(e.label + ": ")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	prompt := lipgloss.JoinHorizontal(lipgloss.Center, label, e.textinput.View())
	help := e.styles.Help.Render("enter to search, esc to cancel")
	return prompt + "\n" + help + "\n"
}

// Value returns the current input value.
func (e *ExerciseInput) Value() string {
	return e.textinput.Value()
}

// Submitted returns whether the user confirmed the input.
func (e *ExerciseInput) Submitted() bool {
	return e.submitted
}

// Aborted returns whether the user cancelled the input.
func (e *ExerciseInput) Aborted() bool {
	return e.aborted
}
