package python

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/locale"
)

func TestEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv(constants.PyenvRootEnvVarName, root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "versions", "todo-manager", "bin"), 0755))

	venv := New("todo-manager")
	assert.True(t, venv.Exists())
	assert.Equal(t, filepath.Join(root, "versions", "todo-manager", "bin"), venv.BinPath())

	env, err := venv.Env()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "versions", "todo-manager"), env[constants.VirtualEnvVarName])
}

func TestEnvMissing(t *testing.T) {
	t.Setenv(constants.PyenvRootEnvVarName, t.TempDir())

	venv := New("nope")
	assert.False(t, venv.Exists())

	_, err := venv.Env()
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err), errs.JoinMessage(err))
}
