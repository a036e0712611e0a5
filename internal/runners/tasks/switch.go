package tasks

import (
	"path/filepath"

	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/locale"
)

// SwitchParams holds the arguments to the tasks switch command
type SwitchParams struct {
	File string
}

// RunSwitch changes which todo file the workspace operates on and remembers
// the choice across invocations
func (t *Tasks) RunSwitch(params *SwitchParams) error {
	if t.project == nil {
		return locale.NewInputError("err_tasks_no_project", "No workspace found, run this from a directory governed by one.")
	}

	target := params.File
	if target == "" {
		if !t.out.Config().Interactive {
			return locale.NewInputError("err_tasks_switch_file", "A todo file name is required.")
		}

		choices, err := todoFileChoices(t.project.Dir())
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			return locale.NewInputError("err_tasks_switch_none", "No .txt files found in [NOTICE]{{.V0}}[/RESET].", t.project.Dir())
		}

		if target, err = t.prompt.Select(locale.Tl("tasks_switch_prompt", "Which todo file?"), choices, choices[0]); err != nil {
			return err
		}
	}

	if err := t.cfg.Set(t.fileConfigKey(), target); err != nil {
		return err
	}

	file, err := t.file()
	if err != nil {
		return err
	}

	t.out.Notice(locale.Tl("tasks_switch_success", "Now operating on [NOTICE]{{.V0}}[/RESET].", file.Path()))
	return nil
}

// todoFileChoices lists the .txt files in the workspace root by name
func todoFileChoices(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}

	var choices []string
	for _, match := range matches {
		if fileutils.FileExists(match) {
			choices = append(choices, filepath.Base(match))
		}
	}
	return choices, nil
}
