// Package prepare implements the prepare command, which persists our hook in
// the block we manage inside the user's shell rc file.
package prepare

import (
	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/subshell"
)

// Prepare is the prepare command runner
type Prepare struct {
	out      output.Outputer
	subshell subshell.SubShell
}

type primeable interface {
	primer.Outputer
	primer.Subsheller
}

// New creates a new Prepare runner
func New(prime primeable) *Prepare {
	return &Prepare{
		out:      prime.Output(),
		subshell: prime.Subshell(),
	}
}

// Run writes the hook into the user's rc file, replacing any block written by
// an earlier run
func (p *Prepare) Run() error {
	if err := p.subshell.EnsureRcFileExists(); err != nil {
		return locale.WrapError(err, "err_prepare_rcfile", "Could not create your shell configuration file")
	}

	if err := p.subshell.WriteUserEnv(p.subshell.Hook()); err != nil {
		return locale.WrapError(err, "err_prepare_write", "Could not update your shell configuration file")
	}

	rcFile, err := p.subshell.RcFile()
	if err != nil {
		return err
	}

	p.out.Notice(locale.Tl(
		"prepare_success",
		"Added the [ACTIONABLE]{{.V0}}-activate[/RESET] hook to [NOTICE]{{.V1}}[/RESET]. Restart your shell to pick it up.",
		constants.CommandName, rcFile,
	))
	return nil
}
