// Package promptmock provides a scripted prompt.Prompter for tests.
package promptmock

import (
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/prompt"
)

// Mock replays scripted responses, returning an aborted-prompt error once
// they run out
type Mock struct {
	InputResponses   []string
	SelectResponses  []string
	ConfirmResponses []bool
}

var _ prompt.Prompter = &Mock{}

func New(inputs ...string) *Mock {
	return &Mock{InputResponses: inputs}
}

func (m *Mock) Input(message, defaultResponse string, flags ...prompt.Flag) (string, error) {
	return m.nextInput()
}

func (m *Mock) InputAndValidate(message, defaultResponse string, validator func(val interface{}) error) (string, error) {
	response, err := m.nextInput()
	if err != nil {
		return "", err
	}
	if err := validator(response); err != nil {
		return "", err
	}
	return response, nil
}

func (m *Mock) Select(message string, choices []string, defaultChoice string) (string, error) {
	if len(m.SelectResponses) == 0 {
		return "", aborted()
	}
	response := m.SelectResponses[0]
	m.SelectResponses = m.SelectResponses[1:]
	return response, nil
}

func (m *Mock) Confirm(message string, defaultChoice bool) (bool, error) {
	if len(m.ConfirmResponses) == 0 {
		return false, aborted()
	}
	response := m.ConfirmResponses[0]
	m.ConfirmResponses = m.ConfirmResponses[1:]
	return response, nil
}

func (m *Mock) nextInput() (string, error) {
	if len(m.InputResponses) == 0 {
		return "", aborted()
	}
	response := m.InputResponses[0]
	m.InputResponses = m.InputResponses[1:]
	return response, nil
}

func aborted() error {
	return locale.NewInputError("err_prompt_aborted", "Prompt was aborted")
}
