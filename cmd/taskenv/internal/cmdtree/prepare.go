package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/prepare"
)

func newPrepareCommand(prime *primer.Values) *captain.Command {
	runner := prepare.New(prime)

	return captain.NewCommand(
		"prepare",
		locale.Tl("prepare_title", "Preparing Your Shell"),
		locale.Tl("prepare_description", "Add our activation hook to your shell configuration"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run()
		},
	)
}
