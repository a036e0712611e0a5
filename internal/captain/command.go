package captain

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/output"
)

// Executor is the function signature a command executes when invoked
type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra *cobra.Command

	title string
	out   output.Outputer

	flags     []*Flag
	arguments []*Argument

	execute Executor
}

// NewCommand constructs a Command, wiring flags and arguments into cobra.
// title is printed as a heading before the command runs, pass an empty string
// to print nothing.
func NewCommand(name, title, description string, out output.Outputer, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			msg := fmt.Sprintf(
				"Cannot have a non-required argument followed by a required argument.\n\n%v\n\n%v",
				arg, args[len(args)-1],
			)
			panic(msg)
		}
	}

	cmd := &Command{
		title:     title,
		out:       out,
		execute:   executor,
		arguments: args,
		flags:     flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:   name,
		Short: short,
		Long:  description,
		RunE:  cmd.runner,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func (c *Command) Usage() error {
	return c.cobra.Usage()
}

func (c *Command) UsageText() string {
	return c.cobra.UsageString()
}

func (c *Command) Help() string {
	return fmt.Sprintf("%s\n\n%s", c.cobra.Short, c.UsageText())
}

func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return setupSensibleErrors(err)
}

func (c *Command) Name() string {
	return c.cobra.Name()
}

func (c *Command) SetAliases(aliases ...string) {
	c.cobra.Aliases = aliases
}

func (c *Command) SetHidden(value bool) {
	c.cobra.Hidden = value
}

func (c *Command) Arguments() []*Argument {
	return c.arguments
}

func (c *Command) AddChildren(children ...*Command) {
	for _, child := range children {
		c.cobra.AddCommand(child.cobra)
	}
}

func (c *Command) flagByName(name string) *Flag {
	for _, flag := range c.flags {
		if flag.Name == name {
			return flag
		}
	}
	return nil
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	logging.Debug("Running command: %s", strings.Join(c.subcommandNames(), " "))

	if c.title != "" && c.out != nil {
		c.out.Notice(fmt.Sprintf("[HEADING]%s[/RESET]", c.title))
	}

	// Run OnUse functions for set flags
	c.runFlags()

	for idx, arg := range c.arguments {
		if arg.Required && idx > len(args)-1 {
			return locale.NewInputError("err_arg_required", "The following argument is required: [ACTIONABLE]{{.V0}}[/RESET] ({{.V1}})", arg.Name, arg.Description)
		}

		if idx >= len(args) {
			break
		}

		switch v := arg.Value.(type) {
		case *string:
			*v = args[idx]
		case ArgMarshaler:
			if err := v.Set(args[idx]); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("arg: %s must be *string, or ArgMarshaler", arg.Name))
		}
	}

	return c.execute(c, args)
}

// subcommandNames returns a slice of the names of the sub-commands called
func (c *Command) subcommandNames() []string {
	var commands []string
	cmd := c.cobra
	root := cmd.Root()
	for cmd != nil && cmd != root {
		commands = append(commands, cmd.Name())
		cmd = cmd.Parent()
	}

	// reverse commands
	for i, j := 0, len(commands)-1; i < j; i, j = i+1, j-1 {
		commands[i], commands[j] = commands[j], commands[i]
	}

	return commands
}

func (c *Command) runFlags() {
	if c.cobra.DisableFlagParsing {
		return
	}

	c.cobra.Flags().VisitAll(func(cobraFlag *pflag.Flag) {
		if !cobraFlag.Changed {
			return
		}

		flag := c.flagByName(cobraFlag.Name)
		if flag == nil || flag.OnUse == nil {
			return
		}

		flag.OnUse()
	})
}

// setupSensibleErrors inspects an error value for cobra/pflag errors and
// returns a user facing input error instead of the raw parser output
func setupSensibleErrors(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("invalid argument %q for %q flag: %v", value, flagName, err)
	invalidArg := "invalid argument "
	if strings.Contains(errMsg, invalidArg) {
		segments := strings.SplitN(errMsg, ": ", 2)

		flagText := "{unknown flag}"
		msg := "unknown error"

		if len(segments) > 0 {
			subsegs := strings.SplitN(segments[0], "for ", 2)
			if len(subsegs) > 1 {
				flagText = strings.TrimSuffix(subsegs[1], " flag")
			}
		}

		if len(segments) > 1 {
			msg = segments[1]
		}

		return locale.NewInputError("err_flag_invalid_value", "Invalid value for flag {{.V0}}: {{.V1}}", flagText, msg)
	}

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("unknown flag: --%v", name)
	unknownFlag := "unknown flag: "
	if strings.Contains(errMsg, unknownFlag) {
		flagText := strings.TrimPrefix(errMsg, unknownFlag)
		return locale.NewInputError("err_flag_no_such_flag", "No such flag: {{.V0}}", flagText)
	}

	return err
}
