package sscommon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/fileutils"
)

func TestEscapeEnv(t *testing.T) {
	escaped := EscapeEnv(map[string]string{
		"SIMPLE": "/some/path",
		"QUOTED": `say "hi"`,
		"MULTI":  "one\ntwo",
	})

	assert.Equal(t, "/some/path", escaped["SIMPLE"])
	assert.Equal(t, `say \"hi\"`, escaped["QUOTED"])
	assert.Equal(t, `one\ntwo`, escaped["MULTI"])
}

func TestExportsSh(t *testing.T) {
	script := ExportsSh(map[string]string{
		"PATH":     "/custom/bin:/usr/bin",
		"ROOT_DIR": "/work",
		"GOPATH":   "/work/go",
	})

	assert.Equal(t,
		"export GOPATH=\"/work/go\"\n"+
			"export ROOT_DIR=\"/work\"\n"+
			"export PATH=\"/custom/bin:/usr/bin\"\n",
		script)
}

func TestExportsFish(t *testing.T) {
	script := ExportsFish(map[string]string{
		"PATH":     "/custom/bin:/usr/bin",
		"ROOT_DIR": "/work",
	})

	assert.Equal(t,
		"set -gx ROOT_DIR \"/work\"\n"+
			"set -gx PATH (string split \":\" \"/custom/bin:/usr/bin\")\n",
		script)
}

func TestWriteRcData(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, fileutils.WriteFile(rcPath, []byte("# mine\n")))

	require.NoError(t, WriteRcData("export FOO=\"bar\"", rcPath))

	data, err := fileutils.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# mine")
	assert.Contains(t, string(data), "export FOO=\"bar\"")

	// writing again replaces the block instead of stacking a second one
	require.NoError(t, WriteRcData("export FOO=\"baz\"", rcPath))

	data, err = fileutils.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export FOO=\"baz\"")
	assert.NotContains(t, string(data), "export FOO=\"bar\"")
}

func TestWriteRcDataCreatesFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, WriteRcData("export FOO=\"bar\"", rcPath))
	assert.True(t, fileutils.FileExists(rcPath))
}

func TestCleanRcFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, fileutils.WriteFile(rcPath, []byte("# mine\n")))
	require.NoError(t, WriteRcData("export FOO=\"bar\"", rcPath))

	require.NoError(t, CleanRcFile(rcPath))

	data, err := fileutils.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	// cleaning again is a no-op
	require.NoError(t, CleanRcFile(rcPath))
}

func TestCleanRcFileMissing(t *testing.T) {
	require.NoError(t, CleanRcFile(filepath.Join(t.TempDir(), ".bashrc")))
}

func TestWriteSessionRcFile(t *testing.T) {
	path, err := WriteSessionRcFile(".sh", "export FOO=\"bar\"\n")
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, ".sh", filepath.Ext(path))
	data, err := fileutils.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export FOO=\"bar\"\n", string(data))
}
