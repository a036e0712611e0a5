// Package projectfile covers parsing and locating the taskenv.yaml project
// file, which marks the workspace root and configures the environment that
// gets set up for it.
package projectfile

import (
	"os"
	"path/filepath"

	"github.com/imdario/mergo"
	yaml "gopkg.in/yaml.v2"

	"github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
)

// Project covers the top level project structure of our yaml
type Project struct {
	Name  string `yaml:"name"`
	Venv  Venv   `yaml:"venv"`
	Go    Go     `yaml:"go"`
	Tasks Tasks  `yaml:"tasks"`
	path  string // "private"
}

// Venv covers the virtualenv structure, which goes under Project
type Venv struct {
	Name string `yaml:"name"`
}

// Go covers the Go toolchain structure, which goes under Project
type Go struct {
	Version string `yaml:"version"`
}

// Tasks covers the todo.txt configuration, which goes under Project
type Tasks struct {
	File string `yaml:"file"`
}

// defaults are merged into whatever the yaml defined
func defaults() Project {
	return Project{
		Venv:  Venv{Name: constants.DefaultVenvName},
		Go:    Go{Version: constants.DefaultGoVersion},
		Tasks: Tasks{File: constants.DefaultTodoFileName},
	}
}

// Path returns the path to the project file
func (p *Project) Path() string {
	return p.path
}

// Dir returns the directory holding the project file, ie. the workspace root
func (p *Project) Dir() string {
	return filepath.Dir(p.path)
}

// TodoFile returns the absolute path of the configured todo.txt file
func (p *Project) TodoFile() string {
	if filepath.IsAbs(p.Tasks.File) {
		return p.Tasks.File
	}
	return filepath.Join(p.Dir(), p.Tasks.File)
}

// Parse the given project file
func Parse(configFilepath string) (*Project, error) {
	dat, err := fileutils.ReadFile(configFilepath)
	if err != nil {
		return nil, err
	}

	project := Project{}
	if err := yaml.Unmarshal(dat, &project); err != nil {
		return nil, locale.WrapInputError(err, "err_project_parse", "Could not parse {{.V0}}: {{.V1}}", configFilepath, err.Error())
	}

	if err := mergo.Merge(&project, defaults()); err != nil {
		return nil, errs.Wrap(err, "Could not merge project defaults")
	}

	project.path, err = filepath.Abs(configFilepath)
	if err != nil {
		return nil, errs.Wrap(err, "Could not get absolute path of %s", configFilepath)
	}

	return &project, nil
}

// ErrorNoProject is returned when no project file governs the given directory
type ErrorNoProject struct {
	*locale.LocalizedError
}

// FromPath locates and parses the project file governing the given directory,
// walking up parent directories until it finds one
func FromPath(path string) (*Project, error) {
	configPath, err := fileutils.FindFileInPath(path, constants.ConfigFileName)
	if err != nil {
		return nil, &ErrorNoProject{locale.WrapInputError(err, "err_root_not_found", "", constants.ConfigFileName, path)}
	}

	logging.Debug("Using project file at %s", configPath)
	return Parse(configPath)
}

// FromWD locates and parses the project file governing the working directory
func FromWD() (*Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errs.Wrap(err, "Could not get working directory")
	}
	return FromPath(wd)
}

// Create writes a minimal project file to the given directory
func Create(dir, name string) (*Project, error) {
	path := filepath.Join(dir, constants.ConfigFileName)
	if fileutils.FileExists(path) {
		return nil, locale.NewInputError("err_project_exists", "A {{.V0}} already exists at {{.V1}}", constants.ConfigFileName, dir)
	}

	project := defaults()
	project.Name = name

	dat, err := yaml.Marshal(project)
	if err != nil {
		return nil, errs.Wrap(err, "Could not marshal project file")
	}

	if err := fileutils.WriteFile(path, dat); err != nil {
		return nil, err
	}

	return Parse(path)
}
