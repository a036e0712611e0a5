package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/activate"
)

func newActivateCommand(prime *primer.Values) *captain.Command {
	runner := activate.New(prime)

	params := activate.Params{}

	return captain.NewCommand(
		"activate",
		locale.Tl("activate_title", "Activating Your Environment"),
		locale.Tl("activate_description", "Start a subshell with the workspace environment applied"),
		prime.Output(),
		[]*captain.Flag{
			{
				Name:        "path",
				Description: locale.Tl("flag_activate_path_description", "The workspace directory to activate, defaults to the one governing the current directory"),
				Value:       &params.Path,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run(&params)
		},
	)
}
