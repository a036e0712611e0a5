// Package subshell spawns and configures the user's shell: starting activated
// sessions, rendering eval-able export scripts and managing the block we own
// in the user's rc file.
package subshell

import (
	"os"
	"path/filepath"

	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/subshell/bash"
	"github.com/taskenv/cli/internal/subshell/fish"
	"github.com/taskenv/cli/internal/subshell/zsh"
)

// SubShell defines the interface for our shell integrations, which live in
// sub-directories under the same directory as this file
type SubShell interface {
	// Activate starts an interactive session with the configured environment
	Activate(wd string, out output.Outputer) error

	// Errors returns a channel to monitor the running session on
	Errors() <-chan error

	// Deactivate signals the running session to terminate
	Deactivate() error

	// IsActive returns whether a session is running
	IsActive() bool

	// Binary returns the configured shell binary
	Binary() string

	// SetBinary sets the configured binary, this should only be called by the subshell package
	SetBinary(string)

	// SetEnv sets the environment the next session starts with
	SetEnv(env map[string]string)

	// Shell returns an identifiable string representing the shell, eg. bash, zsh
	Shell() string

	// ExportScript renders an eval-able script applying the given environment
	ExportScript(env map[string]string, wd string) string

	// Hook renders the shell function users put in their rc file to activate
	// the environment in place
	Hook() string

	// RcFile returns the path of the user's rc file
	RcFile() (string, error)

	// EnsureRcFileExists creates the user's rc file if it is missing
	EnsureRcFileExists() error

	// WriteUserEnv persists the given script in our managed rc file block
	WriteUserEnv(data string) error

	// CleanUserEnv removes our managed rc file block
	CleanUserEnv() error
}

// New detects the shell from the SHELL env var and returns its integration,
// falling back to bash when detection comes up empty
func New() SubShell {
	binary := os.Getenv("SHELL")
	if binary == "" {
		binary = "bash"
	}

	subs, err := Get(filepath.Base(binary))
	if err != nil {
		logging.Debug("Unsupported shell %s, falling back to bash", binary)
		subs = &bash.SubShell{}
	}

	subs.SetBinary(binary)
	return subs
}

// Get returns the integration for the named shell
func Get(name string) (SubShell, error) {
	var subs SubShell
	switch name {
	case bash.Name:
		subs = &bash.SubShell{}
	case zsh.Name:
		subs = &zsh.SubShell{}
	case fish.Name:
		subs = &fish.SubShell{}
	default:
		return nil, locale.NewInputError("err_unsupported_shell", "Unsupported shell: [NOTICE]{{.V0}}[/RESET]", name)
	}

	if subs.Binary() == "" {
		subs.SetBinary(name)
	}
	return subs, nil
}

// Names returns the names of all supported shells
func Names() []string {
	return []string{bash.Name, zsh.Name, fish.Name}
}
