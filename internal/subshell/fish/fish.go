package fish

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/subshell/sscommon"
)

// SubShell covers the subshell.SubShell interface, reference that for documentation
type SubShell struct {
	binary string
	rcFile string
	cmd    *exec.Cmd
	env    map[string]string
	errs   chan error
}

const Name string = "fish"

// Shell - see subshell.SubShell
func (v *SubShell) Shell() string {
	return Name
}

// Binary - see subshell.SubShell
func (v *SubShell) Binary() string {
	return v.binary
}

// SetBinary - see subshell.SubShell
func (v *SubShell) SetBinary(binary string) {
	v.binary = binary
}

// SetEnv - see subshell.SubShell
func (v *SubShell) SetEnv(env map[string]string) {
	v.env = env
}

// RcFile - see subshell.SubShell
func (v *SubShell) RcFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errs.Wrap(err, "Could not determine home dir")
	}

	return filepath.Join(homeDir, ".config", "fish", "config.fish"), nil
}

// EnsureRcFileExists - see subshell.SubShell
func (v *SubShell) EnsureRcFileExists() error {
	rcFile, err := v.RcFile()
	if err != nil {
		return err
	}

	return fileutils.TouchFileUnlessExists(rcFile)
}

// WriteUserEnv - see subshell.SubShell
func (v *SubShell) WriteUserEnv(data string) error {
	rcFile, err := v.RcFile()
	if err != nil {
		return errs.Wrap(err, "RcFile failure")
	}

	return sscommon.WriteRcData(data, rcFile)
}

// CleanUserEnv - see subshell.SubShell
func (v *SubShell) CleanUserEnv() error {
	rcFile, err := v.RcFile()
	if err != nil {
		return errs.Wrap(err, "RcFile failure")
	}

	return sscommon.CleanRcFile(rcFile)
}

// ExportScript - see subshell.SubShell
func (v *SubShell) ExportScript(env map[string]string, wd string) string {
	script := sscommon.ExportsFish(sscommon.EscapeEnv(env))
	if wd != "" {
		script += fmt.Sprintf("cd \"%s\"\n", wd)
	}
	return script
}

// Hook - see subshell.SubShell
func (v *SubShell) Hook() string {
	return fmt.Sprintf(
		"function %s-activate\n"+
			"    %s env --shell %s | source\n"+
			"end\n",
		constants.CommandName, constants.CommandName, Name)
}

// Activate - see subshell.SubShell
func (v *SubShell) Activate(wd string, out output.Outputer) error {
	rcFile, err := sscommon.WriteSessionRcFile(".fish", v.ExportScript(v.env, wd))
	if err != nil {
		return err
	}
	v.rcFile = rcFile

	cmd := sscommon.NewCommand(v.Binary(), []string{"-C", fmt.Sprintf("source \"%s\"", rcFile)}, nil)
	v.errs = sscommon.Start(cmd)
	v.cmd = cmd
	return nil
}

// Errors returns a channel for receiving errors related to active behavior
func (v *SubShell) Errors() <-chan error {
	return v.errs
}

// Deactivate - see subshell.SubShell
func (v *SubShell) Deactivate() error {
	if !v.IsActive() {
		return nil
	}

	if err := sscommon.Stop(v.cmd); err != nil {
		return err
	}

	v.cmd = nil
	return nil
}

// IsActive - see subshell.SubShell
func (v *SubShell) IsActive() bool {
	return v.cmd != nil && (v.cmd.ProcessState == nil || !v.cmd.ProcessState.Exited())
}
