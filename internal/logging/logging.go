// Package logging provides leveled, printf-style logging for the rest of the
// codebase. The API stays close to what runners and plumbing expect
// (logging.Debug / Info / Warning / Error with format args); logrus does the
// actual writing so we get consistent timestamps and level filtering for free.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/taskenv/cli/internal/constants"
)

var (
	mu     sync.Mutex
	logger = logrus.New()
	file   *os.File
)

func init() {
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		DisableColors:   true,
	})
}

// SetupFileLogger directs all log output to the log file under the given
// config dir. Callers that never set this up (eg. tests) simply log nowhere.
func SetupFileLogger(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(configDir, constants.LogFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if file != nil {
		file.Close()
	}
	file = f
	logger.SetOutput(f)
	return nil
}

// SetOutput overrides where log entries are written, mainly used by tests
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// SetVerbose also mirrors log entries to stderr, used for --verbose
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		out := logger.Out
		if file != nil {
			out = file
		}
		logger.SetOutput(io.MultiWriter(out, os.Stderr))
	}
}

// Close releases the log file, if one is open
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	logger.SetOutput(io.Discard)
	return err
}

// Debug logs a debug message, printf style
func Debug(msg string, args ...interface{}) {
	logger.Debugf(msg, args...)
}

// Info logs an informational message, printf style
func Info(msg string, args ...interface{}) {
	logger.Infof(msg, args...)
}

// Warning logs a warning, printf style
func Warning(msg string, args ...interface{}) {
	logger.Warnf(msg, args...)
}

// Error logs an error, printf style
func Error(msg string, args ...interface{}) {
	logger.Errorf(msg, args...)
}

// Critical logs an error that should realistically never happen
func Critical(msg string, args ...interface{}) {
	logger.Errorf("CRITICAL: "+msg, args...)
}
