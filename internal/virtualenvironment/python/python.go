// Package python locates named pyenv-virtualenv environments. The virtualenv
// manager itself is an external collaborator, we only resolve environments it
// has already created.
package python

import (
	"os"
	"path/filepath"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/locale"
)

// VirtualEnv represents a named virtualenv under the pyenv root
type VirtualEnv struct {
	name string
	root string
}

// New creates a VirtualEnv resolver for the given environment name
func New(name string) *VirtualEnv {
	return &VirtualEnv{
		name: name,
		root: pyenvRoot(),
	}
}

func pyenvRoot() string {
	if root := os.Getenv(constants.PyenvRootEnvVarName); root != "" {
		return root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pyenv")
}

// Name returns the name of the virtualenv
func (v *VirtualEnv) Name() string {
	return v.name
}

// Path returns the directory the virtualenv lives in, whether it exists or not
func (v *VirtualEnv) Path() string {
	return filepath.Join(v.root, "versions", v.name)
}

// BinPath returns the bin directory that wants to go on PATH
func (v *VirtualEnv) BinPath() string {
	return filepath.Join(v.Path(), "bin")
}

// Exists returns whether the virtualenv has been created on this host
func (v *VirtualEnv) Exists() bool {
	return fileutils.DirExists(v.Path())
}

// Env returns the environment mutations that activate the virtualenv
func (v *VirtualEnv) Env() (map[string]string, error) {
	if !v.Exists() {
		return nil, locale.NewInputError(
			"err_venv_not_found",
			"Virtualenv [ACTIONABLE]{{.V0}}[/RESET] does not exist under {{.V1}}. Create it with 'pyenv virtualenv <python-version> {{.V0}}'.",
			v.name, v.root,
		)
	}

	return map[string]string{
		constants.VirtualEnvVarName: v.Path(),
	}, nil
}
