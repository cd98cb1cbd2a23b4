package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

// commandProgress renders pipeline progress on the command's error
// stream, keeping stdout clean for the actual results.
type commandProgress struct {
	cmd *cobra.Command
}

var _ driven.ProgressReporter = (*commandProgress)(nil)

func newCommandProgress(cmd *cobra.Command) *commandProgress {
	return &commandProgress{cmd: cmd}
}

func (p *commandProgress) Start(name string) {
	p.cmd.PrintErrf("%s...\n", name)
}

func (p *commandProgress) Update(message string) {
	p.cmd.PrintErrf("  %s\n", message)
}

func (p *commandProgress) Succeed(message string) {
	p.cmd.PrintErrf("  %s\n", message)
}

func (p *commandProgress) Fail(message string) {
	p.cmd.PrintErrf("  %s\n", message)
}
