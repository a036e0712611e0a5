package projectfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/fileutils"
)

func writeProjectFile(t *testing.T, dir, contents string) string {
	path := filepath.Join(dir, constants.ConfigFileName)
	require.NoError(t, fileutils.WriteFile(path, []byte(contents)))
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, `
name: todo-manager
venv:
  name: my-venv
go:
  version: "1.22"
`)

	project, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "todo-manager", project.Name)
	assert.Equal(t, "my-venv", project.Venv.Name)
	assert.Equal(t, "1.22", project.Go.Version)
	assert.Equal(t, dir, project.Dir())

	// unset fields fall back to defaults
	assert.Equal(t, constants.DefaultTodoFileName, project.Tasks.File)
	assert.Equal(t, filepath.Join(dir, constants.DefaultTodoFileName), project.TodoFile())
}

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "name: bare\n")

	project, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultVenvName, project.Venv.Name)
	assert.Equal(t, constants.DefaultGoVersion, project.Go.Version)
}

func TestParseInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "name: [unclosed\n  - nope")

	_, err := Parse(path)
	require.Error(t, err)
}

func TestFromPathWalksUp(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "name: walk-up\n")
	nested := filepath.Join(root, "internal", "deeply", "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))

	project, err := FromPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "walk-up", project.Name)
}

func TestFromPathNotFound(t *testing.T) {
	_, err := FromPath(t.TempDir())
	require.Error(t, err)
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	project, err := Create(dir, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", project.Name)
	assert.True(t, fileutils.FileExists(filepath.Join(dir, constants.ConfigFileName)))

	_, err = Create(dir, "fresh")
	assert.Error(t, err, "second create must refuse to overwrite")
}
