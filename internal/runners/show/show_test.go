package show

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/config"
	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/testhelpers/outputhelper"
	"github.com/taskenv/cli/pkg/projectfile"
)

type prime struct {
	out     output.Outputer
	project *projectfile.Project
	cfg     *config.Instance
}

func (p *prime) Output() output.Outputer       { return p.out }
func (p *prime) Project() *projectfile.Project { return p.project }
func (p *prime) Config() *config.Instance      { return p.cfg }

func setup(t *testing.T, project *projectfile.Project) (*Show, *outputhelper.Catcher) {
	t.Helper()

	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })

	catcher := outputhelper.NewCatcher()
	return New(&prime{catcher.Outputer, project, cfg}), catcher
}

func TestRun(t *testing.T) {
	t.Setenv(constants.ActivatedEnvVarName, "")

	pyroot := t.TempDir()
	t.Setenv(constants.PyenvRootEnvVarName, pyroot)
	require.NoError(t, os.MkdirAll(filepath.Join(pyroot, "versions", constants.DefaultVenvName, "bin"), 0755))

	goroot := t.TempDir()
	t.Setenv(constants.GoenvRootEnvVarName, goroot)
	require.NoError(t, os.MkdirAll(filepath.Join(goroot, "versions", "1.21.4", "bin"), 0755))

	project, err := projectfile.Create(t.TempDir(), "test-workspace")
	require.NoError(t, err)

	runner, catcher := setup(t, project)
	require.NoError(t, runner.Run())

	out := catcher.Output()
	assert.Contains(t, out, "test-workspace")
	assert.Contains(t, out, constants.DefaultVenvName)
	assert.Contains(t, out, "1.21.4")
	assert.Contains(t, out, "todo.txt")
	assert.Contains(t, out, "no")
}

func TestRunMissingCollaborators(t *testing.T) {
	t.Setenv(constants.ActivatedEnvVarName, "")
	t.Setenv(constants.PyenvRootEnvVarName, t.TempDir())
	t.Setenv(constants.GoenvRootEnvVarName, t.TempDir())

	project, err := projectfile.Create(t.TempDir(), "test-workspace")
	require.NoError(t, err)

	runner, catcher := setup(t, project)
	require.NoError(t, runner.Run())

	assert.Contains(t, catcher.Output(), "not created")
	assert.Contains(t, catcher.Output(), "not installed")
}

func TestRunNoProject(t *testing.T) {
	runner, _ := setup(t, nil)
	require.Error(t, runner.Run())
}
