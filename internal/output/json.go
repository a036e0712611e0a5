package output

import (
	"encoding/json"
	"fmt"

	"github.com/taskenv/cli/internal/logging"
)

// JSON is the outputer used for --output json. Notices are dropped, as they
// would corrupt the machine readable output stream.
type JSON struct {
	cfg *Config
}

func (f *JSON) Print(value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error(fmt.Sprintf("Could not marshal output: %v", err))
		return
	}

	f.cfg.OutWriter.Write(b)
	f.cfg.OutWriter.Write([]byte("\n"))
}

func (f *JSON) Error(value interface{}) {
	var message string
	switch v := value.(type) {
	case error:
		message = v.Error()
	case string:
		message = v
	default:
		message = fmt.Sprintf("%v", value)
	}

	b, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		logging.Error("Could not marshal error value: %v", err)
		return
	}
	f.cfg.ErrWriter.Write(b)
	f.cfg.ErrWriter.Write([]byte("\n"))
}

// Notice has no effect for JSON output
func (f *JSON) Notice(value interface{}) {}

func (f *JSON) Config() *Config {
	return f.cfg
}
