package tasks

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskenv/cli/internal/config"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/prompt"
	"github.com/taskenv/cli/internal/testhelpers/outputhelper"
	"github.com/taskenv/cli/internal/testhelpers/promptmock"
	"github.com/taskenv/cli/pkg/projectfile"
	"github.com/taskenv/cli/pkg/todotxt"
)

type prime struct {
	out      output.Outputer
	project  *projectfile.Project
	prompter prompt.Prompter
	cfg      *config.Instance
}

func (p *prime) Output() output.Outputer        { return p.out }
func (p *prime) Project() *projectfile.Project  { return p.project }
func (p *prime) Prompt() prompt.Prompter        { return p.prompter }
func (p *prime) Config() *config.Instance       { return p.cfg }

func setup(t *testing.T) (*Tasks, *outputhelper.Catcher, *promptmock.Mock) {
	t.Helper()

	project, err := projectfile.Create(t.TempDir(), "test-workspace")
	require.NoError(t, err)

	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })

	catcher := outputhelper.NewCatcher()
	mock := promptmock.New()

	return New(&prime{catcher.Outputer, project, mock, cfg}), catcher, mock
}

func seed(t *testing.T, runner *Tasks, descriptions ...string) {
	t.Helper()
	file, err := runner.file()
	require.NoError(t, err)

	var list []*todotxt.Task
	for _, d := range descriptions {
		list = append(list, todotxt.NewTask(d))
	}
	require.NoError(t, file.Write(list))
}

func read(t *testing.T, runner *Tasks) []*todotxt.Task {
	t.Helper()
	file, err := runner.file()
	require.NoError(t, err)
	list, err := file.Read()
	require.NoError(t, err)
	return list
}

func TestListEmpty(t *testing.T) {
	runner, catcher, _ := setup(t)
	require.NoError(t, runner.RunList())
	assert.Contains(t, catcher.ErrorOutput(), "No tasks")
}

func TestList(t *testing.T) {
	runner, catcher, _ := setup(t)
	seed(t, runner, "Water the plants", "Ship release")

	require.NoError(t, runner.RunList())
	assert.Contains(t, catcher.Output(), "Water the plants")
	assert.Contains(t, catcher.Output(), "Ship release")
	assert.Contains(t, catcher.Output(), "Pending")
}

func TestAdd(t *testing.T) {
	runner, catcher, _ := setup(t)

	err := runner.RunAdd(&AddParams{
		Description: "Call the plumber",
		Priority:    "A",
		Contexts:    []string{"phone"},
		Projects:    []string{"House"},
	})
	require.NoError(t, err)
	assert.Contains(t, catcher.ErrorOutput(), "Added task")

	list := read(t, runner)
	require.Len(t, list, 1)
	assert.Equal(t, "Call the plumber", list[0].Description)
	assert.Equal(t, "A", list[0].Priority)
	assert.Equal(t, []string{"phone"}, list[0].Contexts)
	assert.Equal(t, []string{"House"}, list[0].Projects)
}

func TestAddNoDescriptionNonInteractive(t *testing.T) {
	runner, _, _ := setup(t)
	err := runner.RunAdd(&AddParams{})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestAddInvalidPriority(t *testing.T) {
	runner, _, _ := setup(t)
	err := runner.RunAdd(&AddParams{Description: "Task", Priority: "abc"})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestComplete(t *testing.T) {
	runner, catcher, _ := setup(t)
	seed(t, runner, "First", "Second")

	require.NoError(t, runner.RunComplete(&CompleteParams{ID: "2"}))
	assert.Contains(t, catcher.ErrorOutput(), "Completed task")

	list := read(t, runner)
	assert.False(t, list[0].Completed)
	assert.True(t, list[1].Completed)
	assert.NotEmpty(t, list[1].CompletedDate)
}

func TestCompleteBadID(t *testing.T) {
	runner, _, _ := setup(t)
	seed(t, runner, "Only")

	for _, id := range []string{"0", "2", "-1", "abc"} {
		err := runner.RunComplete(&CompleteParams{ID: id})
		require.Error(t, err, "id: %s", id)
		assert.True(t, locale.IsInputError(err), "id: %s", id)
	}
}

func TestRemove(t *testing.T) {
	runner, _, _ := setup(t)
	seed(t, runner, "First", "Second", "Third")

	require.NoError(t, runner.RunRemove(&RemoveParams{ID: "2"}))

	list := read(t, runner)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Description)
	assert.Equal(t, "Third", list[1].Description)
}

func TestSwitch(t *testing.T) {
	runner, catcher, _ := setup(t)
	seed(t, runner, "In the default file")

	require.NoError(t, runner.RunSwitch(&SwitchParams{File: "other.txt"}))
	assert.Contains(t, catcher.ErrorOutput(), "other.txt")

	// the runner now operates on the switched file, which starts out empty
	assert.Empty(t, read(t, runner))

	require.NoError(t, runner.RunAdd(&AddParams{Description: "In the other file"}))

	file, err := runner.file()
	require.NoError(t, err)
	assert.Equal(t, "other.txt", filepath.Base(file.Path()))
}

func TestShellDispatch(t *testing.T) {
	runner, catcher, _ := setup(t)

	require.NoError(t, runner.dispatch("add", "Do the thing"))
	require.NoError(t, runner.dispatch("done", "1"))
	require.NoError(t, runner.dispatch("list", ""))
	assert.Contains(t, catcher.Output(), "Do the thing")
	require.NoError(t, runner.dispatch("rm", "1"))
	assert.Empty(t, read(t, runner))

	err := runner.dispatch("frobnicate", "")
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestShellLoop(t *testing.T) {
	projectDir := t.TempDir()
	project, err := projectfile.Create(projectDir, "test-workspace")
	require.NoError(t, err)

	cfg, err := config.NewCustom(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })

	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	outputer, err := output.New("plain", &output.Config{
		OutWriter:   outBuf,
		ErrWriter:   errBuf,
		Interactive: true,
	})
	require.NoError(t, err)

	mock := promptmock.New("add Water the plants", "list", "quit")
	runner := New(&prime{outputer, project, mock, cfg})

	require.NoError(t, runner.RunShell())
	assert.Contains(t, outBuf.String(), "Water the plants")
	assert.Contains(t, errBuf.String(), "Goodbye")
}

func TestSplitCommand(t *testing.T) {
	cmd, arg := splitCommand("  add Water the plants ")
	assert.Equal(t, "add", cmd)
	assert.Equal(t, "Water the plants", arg)

	cmd, arg = splitCommand("list")
	assert.Equal(t, "list", cmd)
	assert.Equal(t, "", arg)

	cmd, _ = splitCommand("   ")
	assert.Equal(t, "", cmd)
}
