// Package hook implements the hook command, which prints the shell function
// users put in their shell config to activate the environment in place.
package hook

import (
	"strings"

	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/subshell"
)

// Params holds the arguments to the hook command
type Params struct {
	Shell string
}

// Hook is the hook command runner
type Hook struct {
	out      output.Outputer
	subshell subshell.SubShell
}

type primeable interface {
	primer.Outputer
	primer.Subsheller
}

// New creates a new Hook runner
func New(prime primeable) *Hook {
	return &Hook{
		out:      prime.Output(),
		subshell: prime.Subshell(),
	}
}

// Run prints the hook for the requested shell, defaulting to the detected one
func (h *Hook) Run(params *Params) error {
	shell := h.subshell
	if params.Shell != "" {
		var err error
		if shell, err = subshell.Get(params.Shell); err != nil {
			return err
		}
	}

	h.out.Print(strings.TrimRight(shell.Hook(), "\n"))
	return nil
}
