package prompt

import (
	"strings"

	"github.com/taskenv/cli/internal/colorize"
	"github.com/taskenv/cli/internal/locale"
)

// ValidateRequired requires that the user provide input
func ValidateRequired(val interface{}) error {
	if s, ok := val.(string); !ok || strings.TrimSpace(s) == "" {
		return locale.NewInputError("err_prompt_required", "Please provide a value")
	}
	return nil
}

// NoValidate is a validator that always passes
func NoValidate(val interface{}) error {
	return nil
}

// ValidatePriority ensures the value is a single uppercase letter (A-Z) or empty
func ValidatePriority(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return locale.NewInputError("err_prompt_priority", "Priority must be a single uppercase letter (A-Z) or empty.")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return locale.NewInputError("err_prompt_priority", "Priority must be a single uppercase letter (A-Z) or empty.")
	}
	return nil
}

// formatMessage strips our color tags, survey does its own styling
func formatMessage(message string) string {
	return colorize.StripColorTags(strings.TrimSpace(message))
}
