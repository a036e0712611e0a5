package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/env"
)

func newEnvCommand(prime *primer.Values) *captain.Command {
	runner := env.New(prime)

	params := env.Params{}

	return captain.NewCommand(
		"env",
		"", // no heading, the output is meant to be eval'd
		locale.Tl("env_description", "Print the workspace environment as a script for your shell to evaluate"),
		prime.Output(),
		[]*captain.Flag{
			{
				Name:        "shell",
				Description: locale.Tl("flag_env_shell_description", "The shell syntax to emit, one of: bash, zsh, fish. Defaults to your login shell"),
				Value:       &params.Shell,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(&params)
		},
	)
}
