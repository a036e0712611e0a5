package sscommon

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/osutils"
)

var escaper *osutils.ShellEscape

func init() {
	escaper = osutils.NewBashEscaper()
}

const lineBreak = "\n"
const lineBreakChar = `\n`

// EscapeEnv escapes all values so they can be exported
func EscapeEnv(env map[string]string) map[string]string {
	result := map[string]string{}
	for k, v := range env {
		result[k] = escaper.Escape(v)
		result[k] = strings.ReplaceAll(result[k], lineBreak, lineBreakChar)
	}
	return result
}

// NewCommand constructs a shell command with the given environment on top of
// the current process environment
func NewCommand(binary string, args []string, env map[string]string) *exec.Cmd {
	cmd := exec.Command(binary, args...)
	cmd.Env = append(os.Environ(), osutils.EnvMapToSlice(env)...)
	return cmd
}

// Start wires stdin/stdout/stderr into the provided command, starts it, and
// returns a channel to monitor errors on.
func Start(cmd *exec.Cmd) chan error {
	logging.Debug("Starting subshell: %s", strings.Join(cmd.Args, " "))
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	errors := make(chan error, 1)

	if err := cmd.Start(); err != nil {
		errors <- errs.Wrap(err, "Could not start subshell")
		close(errors)
		return errors
	}

	go func() {
		defer close(errors)

		if err := cmd.Wait(); err != nil {
			if eerr, ok := err.(*exec.ExitError); ok {
				code := eerr.ExitCode()
				valid := eerr.Exited()
				// code 130 is returned when a process halts
				// due to SIGTERM after receiving a SIGINT
				// code -1 is returned when a process halts
				// due to SIGTERM without any interference.
				if code == 130 || (valid && code == -1) {
					logging.Debug("exit - valid: %t, code: %d", valid, code)
					return
				}
				errors <- errs.WrapExitCode(eerr, code)
				return
			}
			errors <- errs.Wrap(err, "Subshell failure")
		}
	}()

	return errors
}

// Stop signals the provided command to terminate
func Stop(cmd *exec.Cmd) error {
	// may panic if process no longer exists
	defer func() { _ = recover() }()

	if err := cmd.Process.Signal(syscall.SIGHUP); err != nil {
		return errs.Wrap(err, "Could not signal subshell")
	}
	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return errs.Wrap(err, "Could not terminate subshell")
	}

	return nil
}
