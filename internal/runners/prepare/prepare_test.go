package prepare

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/fileutils"
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

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	catcher := outputhelper.NewCatcher()
	shell, err := subshell.Get("bash")
	require.NoError(t, err)

	runner := New(&prime{catcher.Outputer, shell})
	require.NoError(t, runner.Run())

	rcPath := filepath.Join(home, ".bashrc")
	data, err := fileutils.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), constants.RCAppendStartLine)
	assert.Contains(t, string(data), "taskenv-activate()")
	assert.Contains(t, string(data), constants.RCAppendStopLine)
	assert.Contains(t, catcher.ErrorOutput(), rcPath)

	// running again replaces the block instead of stacking a second one
	require.NoError(t, runner.Run())
	data, err = fileutils.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), constants.RCAppendStartLine))
}
