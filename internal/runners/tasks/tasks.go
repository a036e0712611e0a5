// Package tasks implements the tasks command family, managing the todo.txt
// file that lives in the workspace.
package tasks

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taskenv/cli/internal/config"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/prompt"
	"github.com/taskenv/cli/internal/table"
	"github.com/taskenv/cli/pkg/projectfile"
	"github.com/taskenv/cli/pkg/todotxt"
)

// Tasks is the shared state of the tasks command family
type Tasks struct {
	out     output.Outputer
	project *projectfile.Project
	prompt  prompt.Prompter
	cfg     *config.Instance
}

type primeable interface {
	primer.Outputer
	primer.Projecter
	primer.Prompter
	primer.Configurer
}

// New creates a new Tasks runner
func New(prime primeable) *Tasks {
	return &Tasks{
		out:     prime.Output(),
		project: prime.Project(),
		prompt:  prime.Prompt(),
		cfg:     prime.Config(),
	}
}

// fileConfigKey returns the config key remembering the switched todo file for
// this workspace
func (t *Tasks) fileConfigKey() string {
	return fmt.Sprintf("tasks.file.%s", t.project.Dir())
}

// file resolves the todo file for this workspace, honoring a remembered
// switch over the project file setting
func (t *Tasks) file() (*todotxt.File, error) {
	if t.project == nil {
		return nil, locale.NewInputError("err_tasks_no_project", "No workspace found, run this from a directory governed by one.")
	}

	path := t.project.TodoFile()
	if override := t.cfg.GetString(t.fileConfigKey()); override != "" {
		if !filepath.IsAbs(override) {
			override = filepath.Join(t.project.Dir(), override)
		}
		path = override
	}

	return todotxt.NewFile(path), nil
}

// RunList renders the task list
func (t *Tasks) RunList() error {
	file, err := t.file()
	if err != nil {
		return err
	}

	list, err := file.Read()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		t.out.Notice(locale.Tl("tasks_empty", "No tasks in [NOTICE]{{.V0}}[/RESET] yet, add one with 'tasks add'.", file.Path()))
		return nil
	}

	tbl := table.New([]string{
		locale.Tl("tasks_header_id", "#"),
		locale.Tl("tasks_header_status", "Status"),
		locale.Tl("tasks_header_priority", "Pri"),
		locale.Tl("tasks_header_task", "Task"),
		locale.Tl("tasks_header_created", "Created"),
	})
	for i, task := range list {
		tbl.AddRow([]string{
			strconv.Itoa(i + 1),
			task.Status(),
			task.Priority,
			describe(task),
			task.CreatedDate,
		})
	}

	t.out.Print(tbl.Render())
	return nil
}

// describe renders the description with its contexts and projects trailing
func describe(task *todotxt.Task) string {
	parts := []string{task.Description}
	for _, c := range task.Contexts {
		parts = append(parts, "@"+c)
	}
	for _, p := range task.Projects {
		parts = append(parts, "+"+p)
	}
	return strings.Join(parts, " ")
}

// taskID parses a 1-based task number against the given list
func taskID(raw string, count int) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, locale.WrapInputError(err, "err_tasks_id_numeric", "Task number must be a number, got: [NOTICE]{{.V0}}[/RESET]", raw)
	}
	if id < 1 || id > count {
		return 0, locale.NewInputError("err_tasks_id_range", "No task number [NOTICE]{{.V0}}[/RESET], there are {{.V1}} tasks.", strconv.Itoa(id), strconv.Itoa(count))
	}
	return id, nil
}
