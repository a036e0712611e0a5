package osutils

import (
	"regexp"
	"strings"
)

// ShellEscape serve to escape arguments passed to shell commands
type ShellEscape struct {
	wordPattern   *regexp.Regexp
	escapePattern *regexp.Regexp
	escapeWith    string
}

// NewBashEscaper creates a new instance of ShellEscape that's configured for escaping bash style arguments
func NewBashEscaper() *ShellEscape {
	return &ShellEscape{
		regexp.MustCompile(`^[\w/.-]+$`),
		regexp.MustCompile(`(\\|"|\$|` + "`" + `)`),
		`\$1`,
	}
}

// EscapeLineEnd will escape any line end characters that require escaping for the purpose of quoting
func (s *ShellEscape) EscapeLineEnd(value string) string {
	value = strings.Replace(value, "\n", `\n`, -1)
	value = strings.Replace(value, "\r", `\r`, -1)
	return value
}

// Escape will escape any characters that require escaping for the purpose of quoting
func (s *ShellEscape) Escape(value string) string {
	return s.escapePattern.ReplaceAllString(value, s.escapeWith)
}

// Quote returns the given value quoted and escaped, values that are plain
// words are passed through as-is
func (s *ShellEscape) Quote(value string) string {
	if len(value) == 0 {
		return `""`
	}
	if s.wordPattern.MatchString(value) {
		return value
	}
	return `"` + s.EscapeLineEnd(s.Escape(value)) + `"`
}
