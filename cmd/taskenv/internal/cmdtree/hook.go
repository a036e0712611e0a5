package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/hook"
)

func newHookCommand(prime *primer.Values) *captain.Command {
	runner := hook.New(prime)

	params := hook.Params{}

	return captain.NewCommand(
		"hook",
		"", // no heading, the output lands in shell config files
		locale.Tl("hook_description", "Print the shell function that activates the environment in place"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        locale.Tl("arg_hook_shell", "shell"),
				Description: locale.Tl("arg_hook_shell_description", "The shell to print the hook for, one of: bash, zsh, fish"),
				Value:       &params.Shell,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(&params)
		},
	)
}
