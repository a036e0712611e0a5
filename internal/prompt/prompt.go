package prompt

import (
	survey "gopkg.in/AlecAivazis/survey.v1"

	"github.com/taskenv/cli/internal/locale"
)

// Prompter is the interface used to run our prompts from, useful for mocking in tests
type Prompter interface {
	Input(message, defaultResponse string, flags ...Flag) (string, error)
	InputAndValidate(message, defaultResponse string, validator func(val interface{}) error) (string, error)
	Select(message string, choices []string, defaultChoice string) (string, error)
	Confirm(message string, defaultChoice bool) (bool, error)
}

// Prompt is our main prompting struct
type Prompt struct{}

// New creates a new prompter
func New() Prompter {
	return &Prompt{}
}

// Flag represents flags for prompt functions to change their behavior on.
type Flag int

const (
	// NoValidation don't validate the input
	NoValidation Flag = iota
	// InputRequired requires that the user provide input
	InputRequired
)

// Input prompts the user for input
func (p *Prompt) Input(message, defaultResponse string, flags ...Flag) (string, error) {
	validators, err := processFlags(flags)
	if err != nil {
		return "", err
	}

	return p.InputAndValidate(message, defaultResponse, func(val interface{}) error {
		for _, v := range validators {
			if err := v(val); err != nil {
				return err
			}
		}
		return nil
	})
}

// InputAndValidate prompts an input field and allows you to specify a custom validation function
func (p *Prompt) InputAndValidate(message, defaultResponse string, validator func(val interface{}) error) (string, error) {
	var response string
	err := survey.AskOne(&survey.Input{
		Message: formatMessage(message),
		Default: defaultResponse,
	}, &response, validator)
	if err != nil {
		return "", locale.WrapInputError(err, "err_prompt_input", "Prompt was aborted: {{.V0}}", err.Error())
	}
	return response, nil
}

// Select prompts the user to select one entry from multiple choices
func (p *Prompt) Select(message string, choices []string, defaultChoice string) (string, error) {
	var response string
	err := survey.AskOne(&survey.Select{
		Message: formatMessage(message),
		Options: choices,
		Default: defaultChoice,
	}, &response, nil)
	if err != nil {
		return "", locale.WrapInputError(err, "err_prompt_select", "Prompt was aborted: {{.V0}}", err.Error())
	}
	return response, nil
}

// Confirm prompts user for yes or no response.
func (p *Prompt) Confirm(message string, defaultChoice bool) (bool, error) {
	var resp bool
	err := survey.AskOne(&survey.Confirm{
		Message: formatMessage(message),
		Default: defaultChoice,
	}, &resp, nil)
	if err != nil {
		return false, locale.WrapInputError(err, "err_prompt_confirm", "Prompt was aborted: {{.V0}}", err.Error())
	}
	return resp, nil
}

func processFlags(flags []Flag) ([]func(val interface{}) error, error) {
	var validators []func(val interface{}) error
	for _, flag := range flags {
		switch flag {
		case InputRequired:
			validators = append(validators, ValidateRequired)
		case NoValidation:
			validators = append(validators, NoValidate)
		default:
			return nil, locale.NewError("err_prompt_unknown_flag", "Unknown prompt flag")
		}
	}
	return validators, nil
}
