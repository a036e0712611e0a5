package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/show"
)

func newShowCommand(prime *primer.Values) *captain.Command {
	runner := show.New(prime)

	return captain.NewCommand(
		"show",
		locale.Tl("show_title", "Workspace Environment"),
		locale.Tl("show_description", "Show the resolved environment configuration of the workspace"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run()
		},
	)
}
