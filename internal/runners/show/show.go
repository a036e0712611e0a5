// Package show implements the show command, which reports the resolved
// environment configuration of the workspace without changing anything.
package show

import (
	"github.com/taskenv/cli/internal/config"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/primer"
	"github.com/taskenv/cli/internal/virtualenvironment"
	"github.com/taskenv/cli/internal/virtualenvironment/golang"
	"github.com/taskenv/cli/internal/virtualenvironment/python"
	"github.com/taskenv/cli/pkg/projectfile"
)

// Show is the show command runner
type Show struct {
	out     output.Outputer
	project *projectfile.Project
	cfg     *config.Instance
}

type primeable interface {
	primer.Outputer
	primer.Projecter
	primer.Configurer
}

// New creates a new Show runner
func New(prime primeable) *Show {
	return &Show{
		out:     prime.Output(),
		project: prime.Project(),
		cfg:     prime.Config(),
	}
}

type outputData struct {
	Name      string `locale:"show_name,Name" json:"name"`
	Root      string `locale:"show_root,Root" json:"root"`
	Venv      string `locale:"show_venv,Virtualenv" json:"venv"`
	VenvPath  string `locale:"show_venv_path,Virtualenv path" json:"venv_path"`
	Go        string `locale:"show_go,Go constraint" json:"go"`
	GoVersion string `locale:"show_go_version,Go toolchain" json:"go_version"`
	TodoFile  string `locale:"show_todo_file,Todo file" json:"todo_file"`
	Activated string `locale:"show_activated,Activated" json:"activated"`
}

// Run resolves and prints the workspace configuration
func (s *Show) Run() error {
	if s.project == nil {
		return locale.NewInputError("err_show_no_project", "No workspace found, run this from a directory governed by one.")
	}

	data := outputData{
		Name:     s.project.Name,
		Root:     s.project.Dir(),
		Venv:     s.project.Venv.Name,
		Go:       s.project.Go.Version,
		TodoFile: s.project.TodoFile(),
	}

	venv := python.New(s.project.Venv.Name)
	if venv.Exists() {
		data.VenvPath = venv.Path()
	} else {
		data.VenvPath = locale.Tl("show_venv_missing", "[ERROR]not created[/RESET]")
	}

	if v, err := golang.New(s.project.Go.Version).Select(); err == nil {
		data.GoVersion = v.Original()
	} else {
		data.GoVersion = locale.Tl("show_go_missing", "[ERROR]not installed[/RESET]")
	}

	if virtualenvironment.IsActivated() {
		data.Activated = locale.Tl("show_activated_yes", "[SUCCESS]yes[/RESET]")
	} else {
		data.Activated = locale.Tl("show_activated_no", "no")
	}

	s.out.Print(data)
	return nil
}
