package input

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/styles"
)

// Prompt asks for a single line of text on a terminal.
type Prompt struct {
	styles *styles.Styles
	input  io.Reader
	output io.Writer
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithIO overrides the prompt's input and output streams. Tests use this
// to drive the prompt without a terminal.
func WithIO(input io.Reader, output io.Writer) Option {
	return func(p *Prompt) {
		p.input = input
		p.output = output
	}
}

// NewPrompt creates a terminal text prompt.
func NewPrompt(opts ...Option) *Prompt {
	p := &Prompt{styles: styles.DefaultStyles()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask presents the labelled input and blocks until the user submits a
// value or cancels. Cancellation returns context.Canceled.
func (p *Prompt) Ask(ctx context.Context, label string) (string, error) {
	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.input != nil {
		options = append(options, tea.WithInput(p.input))
	}
	if p.output != nil {
		options = append(options, tea.WithOutput(p.output))
	}

	program := tea.NewProgram(NewExerciseInput(label, p.styles), options...)
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("text prompt: %w", err)
	}

	model, ok := final.(*ExerciseInput)
	if !ok {
		return "", fmt.Errorf("text prompt: unexpected model type %T", final)
	}
	if model.Aborted() {
		return "", context.Canceled
	}
	return strings.TrimSpace(model.Value()), nil
}
