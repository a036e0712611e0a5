package primer

import (
	"github.com/taskenv/cli/internal/config"
	"github.com/taskenv/cli/internal/output"
	"github.com/taskenv/cli/internal/prompt"
	"github.com/taskenv/cli/internal/subshell"
	"github.com/taskenv/cli/pkg/projectfile"
)

type Values struct {
	project  *projectfile.Project
	output   output.Outputer
	prompt   prompt.Prompter
	subshell subshell.SubShell
	config   *config.Instance
}

func New(project *projectfile.Project, output output.Outputer, prompt prompt.Prompter, subshell subshell.SubShell, config *config.Instance) *Values {
	return &Values{
		project:  project,
		output:   output,
		prompt:   prompt,
		subshell: subshell,
		config:   config,
	}
}

type Projecter interface {
	Project() *projectfile.Project
}

type Outputer interface {
	Output() output.Outputer
}

type Prompter interface {
	Prompt() prompt.Prompter
}

type Subsheller interface {
	Subshell() subshell.SubShell
}

type Configurer interface {
	Config() *config.Instance
}

func (v *Values) Project() *projectfile.Project {
	return v.project
}

func (v *Values) Output() output.Outputer {
	return v.output
}

func (v *Values) Prompt() prompt.Prompter {
	return v.prompt
}

func (v *Values) Subshell() subshell.SubShell {
	return v.subshell
}

func (v *Values) Config() *config.Instance {
	return v.config
}
