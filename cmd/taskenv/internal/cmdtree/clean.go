package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/runners/clean"
)

func newCleanCommand(prime *primer.Values) *captain.Command {
	runner := clean.New(prime)

	return captain.NewCommand(
		"clean",
		locale.Tl("clean_title", "Cleaning Your Shell Configuration"),
		locale.Tl("clean_description", "Remove our activation hook from your shell configuration"),
		prime.Output(),
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return runner.Run()
		},
	)
}
