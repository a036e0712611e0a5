package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/taskenv/cli/cmd/taskenv/internal/cmdtree"
	"github.com/taskenv/cli/internal/config"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/prompt"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/pkg/projectfile"
)

func main() {
	var exitCode int

	var cfg *config.Instance
	defer func() {
		if handlePanics(recover()) {
			exitCode = 1
		}
		if cfg != nil {
			if err := cfg.Close(); err != nil {
				logging.Error("Could not close config: %v", err)
			}
		}
		logging.Close()
		os.Exit(exitCode)
	}()

	var err error
	cfg, err = config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load config: %s\n", errs.JoinMessage(err))
		exitCode = 1
		return
	}

	if err := logging.SetupFileLogger(cfg.ConfigDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Could not set up log file, continuing without: %s\n", errs.JoinMessage(err))
	}

	// Set up our output formatter/writer
	outFlags := parseOutputFlags(os.Args)
	out, err := output.New(outFlags.Format, &output.Config{
		OutWriter:   os.Stdout,
		ErrWriter:   os.Stderr,
		Colored:     isTerminal(os.Stdout) && isTerminal(os.Stderr),
		Interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, locale.ErrorMessage(err))
		exitCode = 1
		return
	}

	err = run(os.Args, cfg, out)
	if err != nil {
		exitCode = errs.ParseExitCode(err)
		renderError(out, err)
	}
}

func run(args []string, cfg *config.Instance, out output.Outputer) error {
	logging.SetVerbose(os.Getenv("VERBOSE") != "" || argsHaveVerbose(args))
	logging.Debug("ConfigDir: %s", cfg.ConfigDir())

	// Commands that need a project error out themselves when this comes up empty
	project, err := projectfile.FromWD()
	if err != nil {
		if !errs.Matches(err, &projectfile.ErrorNoProject{}) {
			return err
		}
		logging.Debug("No workspace governs the working directory")
		project = nil
	}

	prime := primer.New(project, out, prompt.New(), subshell.New(), cfg)

	return cmdtree.New(prime).Execute(args[1:])
}

type outputFlags struct {
	Format string
}

// parseOutputFlags pre-parses the output format flag, it is needed before the
// command tree and its flag parsing can be set up
func parseOutputFlags(args []string) outputFlags {
	flags := outputFlags{}
	for i, arg := range args {
		switch {
		case arg == "--":
			return flags
		case arg == "--output" || arg == "-o":
			if i+1 < len(args) {
				flags.Format = args[i+1]
			}
		case len(arg) > 9 && arg[:9] == "--output=":
			flags.Format = arg[9:]
		case len(arg) > 3 && arg[:3] == "-o=":
			flags.Format = arg[3:]
		}
	}
	return flags
}

func argsHaveVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	return false
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
