package confirm

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

// Ensure Prompt implements the interface.
var _ driven.Confirmer = (*Prompt)(nil)

// Prompt asks yes/no questions on a terminal using the confirm model.
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

// NewPrompt creates a terminal confirmation prompt.
func NewPrompt(opts ...Option) *Prompt {
	p := &Prompt{styles: styles.DefaultStyles()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Confirm presents the question and blocks until the user answers or the
// context is cancelled.
func (p *Prompt) Confirm(ctx context.Context, question string) (bool, error) {
	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.input != nil {
		options = append(options, tea.WithInput(p.input))
	}
	if p.output != nil {
		options = append(options, tea.WithOutput(p.output))
	}

	program := tea.NewProgram(New(question, p.styles), options...)
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("confirmation prompt: unexpected model type %T", final)
	}
	if model.Aborted() {
		return false, context.Canceled
	}
	return model.Accepted(), nil
}
