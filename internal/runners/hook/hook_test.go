package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/internal/testhelpers/outputhelper"
)

type prime struct {
	out      output.Outputer
	subshell subshell.SubShell
}

func (p *prime) Output() output.Outputer     { return p.out }
func (p *prime) Subshell() subshell.SubShell { return p.subshell }

func setup(t *testing.T) (*Hook, *outputhelper.Catcher) {
	t.Helper()
	catcher := outputhelper.NewCatcher()
	shell, err := subshell.Get("bash")
	require.NoError(t, err)
	return New(&prime{catcher.Outputer, shell}), catcher
}

func TestRun(t *testing.T) {
	runner, catcher := setup(t)
	require.NoError(t, runner.Run(&Params{}))
	assert.Contains(t, catcher.Output(), "taskenv-activate()")
	assert.Contains(t, catcher.Output(), "env --shell bash")
}

func TestRunShellOverride(t *testing.T) {
	runner, catcher := setup(t)
	require.NoError(t, runner.Run(&Params{Shell: "fish"}))
	assert.Contains(t, catcher.Output(), "function taskenv-activate")
}

func TestRunUnknownShell(t *testing.T) {
	runner, _ := setup(t)
	require.Error(t, runner.Run(&Params{Shell: "csh"}))
}
