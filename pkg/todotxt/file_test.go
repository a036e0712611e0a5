package todotxt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/fileutils"
)

func TestFileMissingReadsEmpty(t *testing.T) {
	file := NewFile(filepath.Join(t.TempDir(), "todo.txt"))
	tasks, err := file.Read()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestFileRoundTrip(t *testing.T) {
	file := NewFile(filepath.Join(t.TempDir(), "todo.txt"))

	in := []*Task{
		NewTask("First"),
		NewTask("Second"),
	}
	in[1].AddProject("Work")
	require.NoError(t, file.Write(in))

	out, err := file.Read()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "First", out[0].Description)
	assert.Equal(t, []string{"Work"}, out[1].Projects)
}

func TestFileSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	require.NoError(t, fileutils.WriteFile(path, []byte("First\n\n\nSecond\n")))

	tasks, err := NewFile(path).Read()
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestFileRejectsInvalidLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	require.NoError(t, fileutils.WriteFile(path, []byte("Valid task\n@nope +nothing\n")))

	_, err := NewFile(path).Read()
	require.Error(t, err)
}
