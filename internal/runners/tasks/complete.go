package tasks

import (
	"github.com/taskenv/cli/internal/locale"
)

// CompleteParams holds the arguments to the tasks complete command
type CompleteParams struct {
	ID string
}

// RunComplete marks the numbered task as done
func (t *Tasks) RunComplete(params *CompleteParams) error {
	file, err := t.file()
	if err != nil {
		return err
	}

	list, err := file.Read()
	if err != nil {
		return err
	}

	id, err := taskID(params.ID, len(list))
	if err != nil {
		return err
	}

	task := list[id-1]
	if task.Completed {
		t.out.Notice(locale.Tl("tasks_complete_already", "Task [NOTICE]{{.V0}}[/RESET] is already completed.", task.Description))
		return nil
	}

	task.MarkCompleted()
	if err := file.Write(list); err != nil {
		return err
	}

	t.out.Notice(locale.Tl("tasks_complete_success", "Completed task [NOTICE]{{.V0}}[/RESET].", task.Description))
	return nil
}
