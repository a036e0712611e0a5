package todotxt

import (
	"strings"

	"github.com/gofrs/flock"

	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/fileutils"
	"github.com/taskenv/cli/internal/logging"
)

// File manages reading and writing a todo.txt file. Writes take a file lock,
// the interactive shell and direct CLI invocations may target the same file
// at the same time.
type File struct {
	path string
	lock *flock.Flock
}

// NewFile creates a manager for the todo.txt file at the given path
func NewFile(path string) *File {
	return &File{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the path of the managed file
func (f *File) Path() string {
	return f.path
}

// Read parses all tasks from the file. A missing file yields no tasks, the
// file is created on the first write. Blank lines are skipped.
func (f *File) Read() ([]*Task, error) {
	if !fileutils.FileExists(f.path) {
		logging.Debug("Todo file does not exist yet: %s", f.path)
		return nil, nil
	}

	data, err := fileutils.ReadFile(f.path)
	if err != nil {
		return nil, err
	}

	var tasks []*Task
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := Parse(line)
		if err != nil {
			return nil, errs.Wrap(err, "Could not parse line in %s", f.path)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Write replaces the file contents with the given tasks
func (f *File) Write(tasks []*Task) error {
	if err := f.lock.Lock(); err != nil {
		return errs.Wrap(err, "Could not acquire lock on %s", f.lock.Path())
	}
	defer func() {
		if err := f.lock.Unlock(); err != nil {
			logging.Error("Could not release lock on %s: %v", f.lock.Path(), err)
		}
	}()

	var sb strings.Builder
	for _, task := range tasks {
		sb.WriteString(task.String() + "\n")
	}

	return fileutils.WriteFile(f.path, []byte(sb.String()))
}
