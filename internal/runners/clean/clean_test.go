package clean

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/internal/subshell/sscommon"
	"github.com/taskenv/cli/internal/testhelpers/outputhelper"
)

type prime struct {
	out      output.Outputer
	subshell subshell.SubShell
}

func (p *prime) Output() output.Outputer     { return p.out }
func (p *prime) Subshell() subshell.SubShell { return p.subshell }

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(constants.ActivatedEnvVarName, "")

	rcPath := filepath.Join(home, ".bashrc")
	require.NoError(t, fileutils.WriteFile(rcPath, []byte("# mine\n")))
	require.NoError(t, sscommon.WriteRcData("taskenv-activate() { :; }", rcPath))

	catcher := outputhelper.NewCatcher()
	shell, err := subshell.Get("bash")
	require.NoError(t, err)

	runner := New(&prime{catcher.Outputer, shell})
	require.NoError(t, runner.Run())

	data, err := fileutils.ReadFile(rcPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), constants.RCAppendStartLine)
	assert.Contains(t, string(data), "# mine")
}

func TestRunRefusedWhenActivated(t *testing.T) {
	t.Setenv(constants.ActivatedEnvVarName, "/some/root")

	catcher := outputhelper.NewCatcher()
	shell, err := subshell.Get("bash")
	require.NoError(t, err)

	require.Error(t, New(&prime{catcher.Outputer, shell}).Run())
}
