package cmdtree

import (
	"strings"

	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/tasks"
)

// stringList is a repeatable string flag
type stringList []string

var _ captain.FlagMarshaler = &stringList{}

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l *stringList) Type() string {
	return "string"
}

func newTasksCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	return captain.NewCommand(
		"tasks",
		locale.Tl("tasks_title", "Your Tasks"),
		locale.Tl("tasks_description", "Manage the todo file of the workspace. Lists your tasks when invoked without a subcommand"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.RunList()
		},
	)
}

func newTasksListCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	cmd := captain.NewCommand(
		"list",
		locale.Tl("tasks_title", "Your Tasks"),
		locale.Tl("tasks_list_description", "List the tasks in the todo file"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.RunList()
		},
	)
	cmd.SetAliases("ls")
	return cmd
}

func newTasksAddCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	params := tasks.AddParams{}
	var contexts, projects stringList

	return captain.NewCommand(
		"add",
		"",
		locale.Tl("tasks_add_description", "Add a task. Prompts for the details when invoked without them"),
		prime.Output(),
		[]*captain.Flag{
			{
				Name:        "priority",
				Shorthand:   "p",
				Description: locale.Tl("flag_tasks_add_priority_description", "Priority of the task, a single letter A-Z"),
				Value:       &params.Priority,
			},
			{
				Name:        "context",
				Shorthand:   "c",
				Description: locale.Tl("flag_tasks_add_context_description", "Context to tag the task with, repeatable"),
				Value:       &contexts,
			},
			{
				Name:        "project",
				Description: locale.Tl("flag_tasks_add_project_description", "Project to tag the task with, repeatable"),
				Value:       &projects,
			},
		},
		[]*captain.Argument{
			{
				Name:        locale.Tl("arg_tasks_add_description", "description"),
				Description: locale.Tl("arg_tasks_add_description_description", "What needs doing"),
				Value:       &params.Description,
			},
		},
		func(_ *captain.Command, _ []string) error {
			params.Contexts = contexts
			params.Projects = projects
			return runner.RunAdd(&params)
		},
	)
}

func newTasksCompleteCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	params := tasks.CompleteParams{}

	cmd := captain.NewCommand(
		"complete",
		"",
		locale.Tl("tasks_complete_description", "Mark the numbered task as done"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        locale.Tl("arg_tasks_number", "number"),
				Description: locale.Tl("arg_tasks_complete_number_description", "The task number as shown by 'tasks list'"),
				Required:    true,
				Value:       &params.ID,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.RunComplete(&params)
		},
	)
	cmd.SetAliases("done")
	return cmd
}

func newTasksRemoveCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	params := tasks.RemoveParams{}

	cmd := captain.NewCommand(
		"remove",
		"",
		locale.Tl("tasks_remove_description", "Remove the numbered task"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        locale.Tl("arg_tasks_number", "number"),
				Description: locale.Tl("arg_tasks_remove_number_description", "The task number as shown by 'tasks list'"),
				Required:    true,
				Value:       &params.ID,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.RunRemove(&params)
		},
	)
	cmd.SetAliases("rm")
	return cmd
}

func newTasksSwitchCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	params := tasks.SwitchParams{}

	return captain.NewCommand(
		"switch",
		"",
		locale.Tl("tasks_switch_description", "Switch which todo file the workspace operates on. Prompts with the available files when invoked without one"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        locale.Tl("arg_tasks_switch_file", "file"),
				Description: locale.Tl("arg_tasks_switch_file_description", "The todo file to operate on, relative to the workspace root"),
				Value:       &params.File,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.RunSwitch(&params)
		},
	)
}

func newTasksShellCommand(prime *primer.Values) *captain.Command {
	runner := tasks.New(prime)

	return captain.NewCommand(
		"shell",
		"",
		locale.Tl("tasks_shell_description", "Work through your tasks in an interactive shell"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.RunShell()
		},
	)
}
