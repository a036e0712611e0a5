package virtualenvironment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/pkg/projectfile"
)

func setupWorkspace(t *testing.T) *projectfile.Project {
	t.Helper()

	pyroot := t.TempDir()
	t.Setenv(constants.PyenvRootEnvVarName, pyroot)
	require.NoError(t, os.MkdirAll(filepath.Join(pyroot, "versions", constants.DefaultVenvName, "bin"), 0755))

	goroot := t.TempDir()
	t.Setenv(constants.GoenvRootEnvVarName, goroot)
	require.NoError(t, os.MkdirAll(filepath.Join(goroot, "versions", "1.21.4", "bin"), 0755))

	project, err := projectfile.Create(t.TempDir(), "test-workspace")
	require.NoError(t, err)
	return project
}

func TestGetEnv(t *testing.T) {
	project := setupWorkspace(t)
	venv := New(project)

	env, err := venv.GetEnv(false)
	require.NoError(t, err)

	root, err := fileutils.ResolveUnique(project.Dir())
	require.NoError(t, err)

	assert.Equal(t, root, env[constants.RootDirEnvVarName])
	assert.Equal(t, root, env[constants.ActivatedEnvVarName])
	assert.Equal(t, venv.ActivationID(), env[constants.ActivatedIDEnvVarName])
	assert.Equal(t, "1.21.4", env[constants.GoVersionEnvVarName])
	assert.Equal(t, filepath.Join(root, "go"), env["GOPATH"])
	assert.Equal(t, filepath.Join(root, "go", "bin"), env["GOBIN"])
	assert.Contains(t, env[constants.VirtualEnvVarName], constants.DefaultVenvName)

	// later steps prepend, so GOBIN comes first and the venv bin last
	entries := strings.Split(env["PATH"], string(os.PathListSeparator))
	require.Len(t, entries, 4)
	assert.Equal(t, env["GOBIN"], entries[0])
	assert.Equal(t, root, entries[2])
	assert.True(t, strings.HasSuffix(entries[3], filepath.Join(constants.DefaultVenvName, "bin")))
}

func TestGetEnvInherit(t *testing.T) {
	project := setupWorkspace(t)
	t.Setenv("PATH", "/usr/bin"+string(os.PathListSeparator)+"/bin")

	env, err := New(project).GetEnv(true)
	require.NoError(t, err)

	entries := strings.Split(env["PATH"], string(os.PathListSeparator))
	assert.Equal(t, []string{"/usr/bin", "/bin"}, entries[len(entries)-2:])
}

func TestGetEnvPartialOnToolchainFailure(t *testing.T) {
	project := setupWorkspace(t)
	// empty the goenv root so toolchain selection fails after the venv step
	t.Setenv(constants.GoenvRootEnvVarName, t.TempDir())

	venv := New(project)
	env, err := venv.GetEnv(false)
	require.Error(t, err)

	// mutations from the steps before the failure survive
	assert.NotEmpty(t, env[constants.RootDirEnvVarName])
	assert.NotEmpty(t, env[constants.VirtualEnvVarName])
	assert.NotEmpty(t, env["PATH"])
	assert.Equal(t, venv.ActivationID(), env[constants.ActivatedIDEnvVarName])

	// and the failed step exported nothing
	assert.NotContains(t, env, constants.GoVersionEnvVarName)
	assert.NotContains(t, env, "GOPATH")
}

func TestGetEnvPartialOnVenvFailure(t *testing.T) {
	project := setupWorkspace(t)
	t.Setenv(constants.PyenvRootEnvVarName, t.TempDir())

	env, err := New(project).GetEnv(false)
	require.Error(t, err)

	assert.NotEmpty(t, env[constants.RootDirEnvVarName])
	assert.NotContains(t, env, constants.VirtualEnvVarName)
}

func TestIsActivated(t *testing.T) {
	t.Setenv(constants.ActivatedEnvVarName, "")
	assert.False(t, IsActivated())

	t.Setenv(constants.ActivatedEnvVarName, "/some/root")
	assert.True(t, IsActivated())
}

func TestPrependPathDedupes(t *testing.T) {
	sep := string(os.PathListSeparator)
	path := prependPath("/usr/bin"+sep+"/opt/x/bin", "/opt/x/bin")
	assert.Equal(t, "/opt/x/bin"+sep+"/usr/bin", path)

	// repeated activation keeps the PATH stable
	assert.Equal(t, path, prependPath(path, "/opt/x/bin"))
}
