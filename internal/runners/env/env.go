// Package env implements the env command, which assembles the workspace
// environment and prints it as an eval-able script for the calling shell.
package env

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/internal/virtualenvironment"
	"github.com/taskenv/cli/pkg/projectfile"
)

// Params holds the arguments to the env command
type Params struct {
	Shell string
}

// Env is the env command runner
type Env struct {
	out      output.Outputer
	project  *projectfile.Project
	subshell subshell.SubShell
}

type primeable interface {
	primer.Outputer
	primer.Projecter
	primer.Subsheller
}

// New creates a new Env runner
func New(prime primeable) *Env {
	return &Env{
		out:      prime.Output(),
		project:  prime.Project(),
		subshell: prime.Subshell(),
	}
}

// Run emits the export script. The output only makes sense when eval'd, so a
// terminal on stdout means the command was invoked directly and we bail with
// instructions instead of spraying export statements at the user.
func (e *Env) Run(params *Params) error {
	if isTTY(e.out.Config().OutWriter) {
		err := locale.NewInputError(
			"err_env_not_eval",
			"The env command prints a script for your shell to evaluate, it does nothing when invoked directly.",
		)
		err.AddTips(locale.Tl("env_eval_hint", `Run 'eval "$({{.V0}} env)"', or put '{{.V0}} hook <shell>' output in your shell config.`, constants.CommandName))
		return err
	}

	shell := e.subshell
	if params.Shell != "" {
		var err error
		if shell, err = subshell.Get(params.Shell); err != nil {
			return err
		}
	}

	venv := virtualenvironment.New(e.project)
	env, stepErr := venv.GetEnv(true)

	// Assembly is sequential without rollback: mutations from the steps that
	// succeeded are still emitted when a later step fails, the error goes to
	// stderr alongside them.
	script := shell.ExportScript(env, venv.WorkingDirectory())
	if script != "" {
		e.out.Print(strings.TrimRight(script, "\n"))
	}

	return stepErr
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
