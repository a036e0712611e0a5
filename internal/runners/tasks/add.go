package tasks

import (
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/prompt"
	"github.com/taskenv/cli/pkg/todotxt"
)

// AddParams holds the arguments to the tasks add command
type AddParams struct {
	Description string
	Priority    string
	Contexts    []string
	Projects    []string
}

// RunAdd appends a task to the todo file, prompting for the missing pieces
// when invoked interactively without them
func (t *Tasks) RunAdd(params *AddParams) error {
	file, err := t.file()
	if err != nil {
		return err
	}

	description := params.Description
	priority := params.Priority

	if description == "" {
		if !t.out.Config().Interactive {
			return locale.NewInputError("err_tasks_add_description", "A task description is required.")
		}
		if description, err = t.prompt.Input(locale.Tl("tasks_add_prompt", "What needs doing?"), "", prompt.InputRequired); err != nil {
			return err
		}
		if priority == "" {
			if priority, err = t.prompt.InputAndValidate(locale.Tl("tasks_add_priority", "Priority (A-Z, empty for none)"), "", prompt.ValidatePriority); err != nil {
				return err
			}
		}
	}

	task := todotxt.NewTask(description)
	if err := task.SetPriority(priority); err != nil {
		return err
	}
	for _, context := range params.Contexts {
		task.AddContext(context)
	}
	for _, project := range params.Projects {
		task.AddProject(project)
	}

	list, err := file.Read()
	if err != nil {
		return err
	}
	if err := file.Write(append(list, task)); err != nil {
		return err
	}

	t.out.Notice(locale.Tl("tasks_add_success", "Added task [NOTICE]{{.V0}}[/RESET].", task.Description))
	return nil
}
