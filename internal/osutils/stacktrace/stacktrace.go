package stacktrace

import (
	"fmt"
	"runtime"
	"strings"
)

// Stacktrace represents a stacktrace
type Stacktrace struct {
	Frames []Frame
}

// Frame is a single frame in a stacktrace
type Frame struct {
	// Func contains the function name this frame relates to
	Func string

	// Path contains the file path this frame relates to
	Path string

	// Line contains the line number this frame relates to
	Line int
}

// String returns the stacktrace in human readable format
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s:%d:%s", frame.Path, frame.Line, frame.Func))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace for the calling frame
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip returns a stacktrace that excludes the given file paths, this is
// mainly used to drop error plumbing from the trace
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, 100)
	n := runtime.Callers(0, pc)
	if n == 0 {
		return stacktrace
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	skipFiles = append(skipFiles, currentFile())

	for {
		frame, more := frames.Next()

		skip := false
		for _, skipFile := range skipFiles {
			if frame.File == skipFile {
				skip = true
				break
			}
		}

		if !skip && !strings.HasPrefix(frame.Function, "runtime.") {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func: frame.Function,
				Path: frame.File,
				Line: frame.Line,
			})
		}

		if !more {
			break
		}
	}

	return stacktrace
}

func currentFile() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}
