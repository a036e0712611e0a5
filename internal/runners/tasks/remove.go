package tasks

import (
	"github.com/taskenv/cli/internal/locale"
)

// RemoveParams holds the arguments to the tasks remove command
type RemoveParams struct {
	ID string
}

// RunRemove deletes the numbered task
func (t *Tasks) RunRemove(params *RemoveParams) error {
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
	if err := file.Write(append(list[:id-1], list[id:]...)); err != nil {
		return err
	}

	t.out.Notice(locale.Tl("tasks_remove_success", "Removed task [NOTICE]{{.V0}}[/RESET].", task.Description))
	return nil
}
