// Package cmdtree wires the runners into the command tree users invoke.
package cmdtree

import (
	"github.com/taskenv/cli/internal/captain"
	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/primer"
)

// CmdTree manages a tree of captain.Command instances.
type CmdTree struct {
	cmd *captain.Command
}

// New prepares a CmdTree.
func New(prime *primer.Values) *CmdTree {
	globals := newGlobalOptions()

	tasksCmd := newTasksCommand(prime)
	tasksCmd.AddChildren(
		newTasksListCommand(prime),
		newTasksAddCommand(prime),
		newTasksCompleteCommand(prime),
		newTasksRemoveCommand(prime),
		newTasksSwitchCommand(prime),
		newTasksShellCommand(prime),
	)

	rootCmd := newRootCommand(prime, globals)
	rootCmd.AddChildren(
		newActivateCommand(prime),
		newEnvCommand(prime),
		newHookCommand(prime),
		newPrepareCommand(prime),
		newCleanCommand(prime),
		newShowCommand(prime),
		tasksCmd,
	)

	return &CmdTree{
		cmd: rootCmd,
	}
}

// Execute runs the tree against the given arguments
func (ct *CmdTree) Execute(args []string) error {
	return ct.cmd.Execute(args)
}

// Command returns the root command
func (ct *CmdTree) Command() *captain.Command {
	return ct.cmd
}

type globalOptions struct {
	Verbose bool
	Output  string
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{}
}

func newRootCommand(prime *primer.Values, globals *globalOptions) *captain.Command {
	cmd := captain.NewCommand(
		constants.CommandName,
		"",
		locale.Tl("cmd_description", "Set up and work inside your development environment"),
		prime.Output(),
		[]*captain.Flag{
			{
				Name:        "verbose",
				Shorthand:   "v",
				Description: locale.Tl("flag_verbose_description", "Verbose output"),
				Persist:     true,
				Value:       &globals.Verbose,
				OnUse: func() {
					logging.SetVerbose(true)
				},
			},
			{
				Name:        "output",
				Shorthand:   "o",
				Description: locale.Tl("flag_output_description", "Output format, one of: plain, json"),
				Persist:     true,
				Value:       &globals.Output,
			},
		},
		[]*captain.Argument{},
		func(ccmd *captain.Command, args []string) error {
			return ccmd.Usage()
		},
	)

	return cmd
}
