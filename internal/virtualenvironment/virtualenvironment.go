// Package virtualenvironment assembles the environment that activates a
// workspace: the resolved root, the Python virtualenv, the Go toolchain and
// the PATH entries that tie them together.
package virtualenvironment

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/virtualenvironment/golang"
	"github.com/taskenv/cli/internal/virtualenvironment/python"
	"github.com/taskenv/cli/pkg/projectfile"
)

// VirtualEnvironment holds the assembly state for a single activation
type VirtualEnvironment struct {
	project      *projectfile.Project
	activationID string
}

// New creates a VirtualEnvironment for the given project
func New(project *projectfile.Project) *VirtualEnvironment {
	return &VirtualEnvironment{
		project:      project,
		activationID: uuid.New().String(),
	}
}

// ActivationID returns the unique ID minted for this activation
func (v *VirtualEnvironment) ActivationID() string {
	return v.activationID
}

// Project returns the project being activated
func (v *VirtualEnvironment) Project() *projectfile.Project {
	return v.project
}

// WorkingDirectory returns the directory the activated session starts in
func (v *VirtualEnvironment) WorkingDirectory() string {
	return v.project.Dir()
}

// GetEnv assembles the environment mutations for this workspace. Steps run in
// order and there is no rollback: when a step fails the mutations assembled
// by the earlier steps are still returned, alongside the error. With inherit
// the PATH is grown from the current process PATH rather than from scratch.
func (v *VirtualEnvironment) GetEnv(inherit bool) (map[string]string, error) {
	env := map[string]string{}

	root, err := v.resolveRoot()
	if err != nil {
		return env, err
	}
	env[constants.RootDirEnvVarName] = root

	path := ""
	if inherit {
		path = os.Getenv("PATH")
	}

	venv := python.New(v.project.Venv.Name)
	venvEnv, err := venv.Env()
	if err != nil {
		return v.finalize(env, path), err
	}
	for k, val := range venvEnv {
		env[k] = val
	}
	path = prependPath(path, venv.BinPath())

	path = prependPath(path, root)

	toolchain := golang.New(v.project.Go.Version)
	goVersion, err := toolchain.Select()
	if err != nil {
		return v.finalize(env, path), err
	}
	for k, val := range toolchain.Env(goVersion) {
		env[k] = val
	}
	path = prependPath(path, toolchain.BinPath(goVersion))
	logging.Debug("Selected Go toolchain %s for constraint %s", goVersion.Original(), toolchain.Constraint())

	gopath := filepath.Join(root, "go")
	gobin := filepath.Join(gopath, "bin")
	env["GOPATH"] = gopath
	env["GOBIN"] = gobin
	path = prependPath(path, gobin)

	return v.finalize(env, path), nil
}

// finalize stamps the activation markers and the accumulated PATH. The
// markers ride along even on partial assembly, re-running against a broken
// step stays detectable and idempotent.
func (v *VirtualEnvironment) finalize(env map[string]string, path string) map[string]string {
	if path != "" {
		env["PATH"] = path
	}
	if root, ok := env[constants.RootDirEnvVarName]; ok {
		env[constants.ActivatedEnvVarName] = root
	}
	env[constants.ActivatedIDEnvVarName] = v.activationID
	return env
}

func (v *VirtualEnvironment) resolveRoot() (string, error) {
	root, err := fileutils.ResolveUnique(v.project.Dir())
	if err != nil {
		return "", locale.WrapError(err, "err_root_resolve", "Could not resolve workspace root: {{.V0}}", v.project.Dir())
	}
	if !fileutils.DirExists(root) {
		return "", locale.NewInputError("err_root_not_dir", "Workspace root is not a directory: {{.V0}}", root)
	}
	return root, nil
}

// IsActivated returns whether the current process already runs inside an
// activated session
func IsActivated() bool {
	return os.Getenv(constants.ActivatedEnvVarName) != ""
}

// ActivatedRoot returns the workspace root of the surrounding activated
// session, or an empty string when there is none
func ActivatedRoot() string {
	return os.Getenv(constants.ActivatedEnvVarName)
}

// prependPath puts entry at the front of the PATH value, dropping any earlier
// occurrence so repeated activation does not grow the PATH
func prependPath(path, entry string) string {
	if path == "" {
		return entry
	}

	sep := string(os.PathListSeparator)
	var kept []string
	for _, existing := range strings.Split(path, sep) {
		if existing == entry || existing == "" {
			continue
		}
		kept = append(kept, existing)
	}

	return strings.Join(append([]string{entry}, kept...), sep)
}
