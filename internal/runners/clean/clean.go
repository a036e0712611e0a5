// Package clean implements the clean command, which removes the block we
// manage from the user's shell rc file.
package clean

import (
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/internal/virtualenvironment"
)

// Clean is the clean command runner
type Clean struct {
	out      output.Outputer
	subshell subshell.SubShell
}

type primeable interface {
	primer.Outputer
	primer.Subsheller
}

// New creates a new Clean runner
func New(prime primeable) *Clean {
	return &Clean{
		out:      prime.Output(),
		subshell: prime.Subshell(),
	}
}

// Run removes our managed block from the user's rc file
func (c *Clean) Run() error {
	if virtualenvironment.IsActivated() {
		return locale.NewInputError(
			"err_clean_activated",
			"You cannot clean your shell configuration from inside an activated session, 'exit' first.",
		)
	}

	if err := c.subshell.CleanUserEnv(); err != nil {
		return locale.WrapError(err, "err_clean_rcfile", "Could not update your shell configuration file")
	}

	rcFile, err := c.subshell.RcFile()
	if err != nil {
		return err
	}

	c.out.Notice(locale.Tl("clean_success", "Removed our configuration from [NOTICE]{{.V0}}[/RESET].", rcFile))
	return nil
}
