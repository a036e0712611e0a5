package tasks

import (
	"strings"

	"github.com/taskenv/cli/internal/locale"
)

// RunShell drops the user into a small interactive loop for working through
// their task list without re-invoking the CLI for every step
func (t *Tasks) RunShell() error {
	if _, err := t.file(); err != nil {
		return err
	}
	if !t.out.Config().Interactive {
		return locale.NewInputError("err_tasks_shell_interactive", "The tasks shell requires an interactive terminal.")
	}

	t.out.Notice(locale.Tl("tasks_intro", "Interactive task shell. Type [ACTIONABLE]help[/RESET] for available commands, [ACTIONABLE]quit[/RESET] to leave."))

	for {
		input, err := t.prompt.Input(locale.Tl("tasks_prompt", "tasks>"), "")
		if err != nil {
			// an aborted prompt (ctrl-c / ctrl-d) leaves the shell
			break
		}

		command, argument := splitCommand(input)
		if command == "" {
			continue
		}
		if command == "quit" || command == "exit" {
			break
		}

		if err := t.dispatch(command, argument); err != nil {
			t.out.Error(locale.ErrorMessage(err))
		}
	}

	t.out.Notice(locale.Tl("tasks_goodbye", "Goodbye!"))
	return nil
}

func (t *Tasks) dispatch(command, argument string) error {
	switch command {
	case "help":
		t.out.Print(locale.Tl("tasks_help",
			"Available commands:\n"+
				"  [ACTIONABLE]add <description>[/RESET]   add a task\n"+
				"  [ACTIONABLE]list[/RESET]                list all tasks\n"+
				"  [ACTIONABLE]done <number>[/RESET]       complete a task\n"+
				"  [ACTIONABLE]rm <number>[/RESET]         remove a task\n"+
				"  [ACTIONABLE]switch <file>[/RESET]       switch todo files\n"+
				"  [ACTIONABLE]quit[/RESET]                leave the shell"))
		return nil
	case "add":
		return t.RunAdd(&AddParams{Description: argument})
	case "list", "ls":
		return t.RunList()
	case "done":
		return t.RunComplete(&CompleteParams{ID: argument})
	case "rm":
		return t.RunRemove(&RemoveParams{ID: argument})
	case "switch":
		return t.RunSwitch(&SwitchParams{File: argument})
	default:
		return locale.NewInputError("err_tasks_shell_unknown", "Unknown command: [NOTICE]{{.V0}}[/RESET], type 'help' for available commands.", command)
	}
}

func splitCommand(input string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), fields[0]))
}
