package output

import (
	"io"

	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
)

// Format is the output format of an Outputer
type Format string

// FormatName constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
)

// Outputer is the initialized formatter
type Outputer interface {
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Config() *Config
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	switch Format(formatName) {
	case "", PlainFormatName:
		return &Plain{config}, nil
	case JSONFormatName:
		return &JSON{config}, nil
	}

	return nil, locale.NewInputError("err_main_outputer", "", formatName)
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter   io.Writer
	ErrWriter   io.Writer
	Colored     bool
	Interactive bool
}
