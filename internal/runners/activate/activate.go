// Package activate implements the activate command, which assembles the
// workspace environment and drops the user into a subshell running inside it.
package activate

import (
	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/internal/virtualenvironment"
	"github.com/taskenv/cli/pkg/projectfile"
)

// Params holds the arguments to the activate command
type Params struct {
	Path string
}

// Activate is the activate command runner
type Activate struct {
	out      output.Outputer
	project  *projectfile.Project
	subshell subshell.SubShell
}

type primeable interface {
	primer.Outputer
	primer.Projecter
	primer.Subsheller
}

// New creates a new Activate runner
func New(prime primeable) *Activate {
	return &Activate{
		out:      prime.Output(),
		project:  prime.Project(),
		subshell: prime.Subshell(),
	}
}

// Run activates the workspace and blocks until the spawned subshell exits
func (a *Activate) Run(params *Params) error {
	if virtualenvironment.IsActivated() {
		a.out.Notice(locale.Tl(
			"activate_already",
			"Your session is already activated for [NOTICE]{{.V0}}[/RESET], use 'exit' to leave it first.",
			virtualenvironment.ActivatedRoot(),
		))
		return nil
	}

	project := a.project
	if params.Path != "" {
		var err error
		if project, err = projectfile.FromPath(params.Path); err != nil {
			return err
		}
	}
	if project == nil {
		return locale.NewInputError(
			"err_root_not_found", "",
			constants.ConfigFileName, params.Path,
		)
	}

	venv := virtualenvironment.New(project)
	env, err := venv.GetEnv(true)
	if err != nil {
		// no subshell on a broken environment, nothing would work inside it
		return err
	}

	a.out.Notice(locale.Tl(
		"activate_notice",
		"Activating environment for [NOTICE]{{.V0}}[/RESET]",
		project.Name,
	))

	a.subshell.SetEnv(env)
	if err := a.subshell.Activate(venv.WorkingDirectory(), a.out); err != nil {
		return locale.WrapError(err, "err_activate_subshell", "Could not start a subshell")
	}

	logging.Debug("Waiting for subshell %s to exit", a.subshell.Shell())
	err = <-a.subshell.Errors()

	a.out.Notice(locale.Tl("activate_goodbye", "Deactivated, see you next time!"))
	return err
}
