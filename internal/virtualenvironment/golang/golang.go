// Package golang selects an installed Go toolchain from the goenv root. The
// version manager itself is an external collaborator, we only pick between
// toolchains it has already installed.
package golang

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
)

// Toolchain resolves a configured version constraint against the toolchains
// installed under the goenv root
type Toolchain struct {
	constraint string
	root       string
}

// New creates a Toolchain resolver for the given version constraint. The
// constraint can be a full version ("1.21.4") or a prefix ("1.21"), prefixes
// select the highest installed version that matches.
func New(constraint string) *Toolchain {
	return &Toolchain{
		constraint: constraint,
		root:       goenvRoot(),
	}
}

func goenvRoot() string {
	if root := os.Getenv(constants.GoenvRootEnvVarName); root != "" {
		return root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goenv")
}

// Constraint returns the configured version constraint
func (t *Toolchain) Constraint() string {
	return t.constraint
}

// Installed returns all toolchain versions installed under the goenv root,
// newest first
func (t *Toolchain) Installed() ([]*goversion.Version, error) {
	entries, err := os.ReadDir(filepath.Join(t.root, "versions"))
	if err != nil {
		return nil, errs.Wrap(err, "Could not read goenv versions under %s", t.root)
	}

	var versions []*goversion.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := goversion.NewVersion(entry.Name())
		if err != nil {
			logging.Debug("Skipping unparseable toolchain dir: %s", entry.Name())
			continue
		}
		versions = append(versions, v)
	}

	sort.Sort(sort.Reverse(goversion.Collection(versions)))
	return versions, nil
}

// Select resolves the constraint to an installed version
func (t *Toolchain) Select() (*goversion.Version, error) {
	desired, err := goversion.NewVersion(t.constraint)
	if err != nil {
		return nil, locale.WrapInputError(err, "err_toolchain_constraint", "Invalid Go version: {{.V0}}", t.constraint)
	}

	installed, err := t.Installed()
	if err != nil {
		return nil, locale.WrapError(err,
			"err_toolchain_no_goenv",
			"Could not list Go toolchains under {{.V0}}. Is goenv installed?",
			t.root,
		)
	}

	for _, candidate := range installed {
		if matches(candidate, desired, t.constraint) {
			return candidate, nil
		}
	}

	return nil, locale.NewInputError(
		"err_toolchain_not_installed",
		"No installed Go toolchain matches [ACTIONABLE]{{.V0}}[/RESET]. Install one with 'goenv install {{.V0}}'.",
		t.constraint,
	)
}

// matches reports whether the candidate satisfies the desired version, a
// constraint with fewer segments than the candidate acts as a prefix match
func matches(candidate, desired *goversion.Version, raw string) bool {
	if candidate.Equal(desired) {
		return true
	}

	segments := strings.Count(raw, ".") + 1
	cs, ds := candidate.Segments(), desired.Segments()
	for i := 0; i < segments && i < len(ds); i++ {
		if i >= len(cs) || cs[i] != ds[i] {
			return false
		}
	}
	return true
}

// VersionPath returns the install dir of the given toolchain version
func (t *Toolchain) VersionPath(v *goversion.Version) string {
	return filepath.Join(t.root, "versions", v.Original())
}

// Env returns the environment mutations that select the given toolchain
func (t *Toolchain) Env(v *goversion.Version) map[string]string {
	return map[string]string{
		constants.GoVersionEnvVarName: v.Original(),
	}
}

// BinPath returns the bin directory of the given toolchain version
func (t *Toolchain) BinPath(v *goversion.Version) string {
	return filepath.Join(t.VersionPath(v), "bin")
}
