package driven

import "context"

// ProgressReporter surfaces long-running operation progress to the user.
// It decouples the import core from any particular rendering, so the
// pipeline is testable without capturing console output.
type ProgressReporter interface {
	// Start begins a named operation.
	Start(name string)

	// Update replaces the current operation's status line.
	Update(message string)

	// Succeed completes the current operation successfully.
	Succeed(message string)

	// Fail completes the current operation with a failure message.
	Fail(message string)
}

// Confirmer asks the user a yes/no question before a mutating step.
type Confirmer interface {
	// Confirm presents the question and returns the user's answer.
	Confirm(ctx context.Context, question string) (bool, error)
}
