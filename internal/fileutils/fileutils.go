// Package fileutils provides filesystem helpers shared throughout the codebase.
package fileutils

import (
	"os"
	"path/filepath"

	"github.com/taskenv/cli/internal/errs"
)

// FileExists checks if the given file (not folder) exists
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// DirExists checks if the given directory exists
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// TargetExists checks if the given file or folder exists
func TargetExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Mkdir is a small helper function to create a directory if it doesnt already exist
func Mkdir(path string, subpath ...string) error {
	if len(subpath) > 0 {
		subpathStr := filepath.Join(subpath...)
		path = filepath.Join(path, subpathStr)
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return errs.Wrap(err, "MkdirAll failed for path: %s", path)
	}
	return nil
}

// ReadFile reads the content of a file
func ReadFile(filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errs.Wrap(err, "ReadFile %s failed", filePath)
	}
	return b, nil
}

// WriteFile writes data to a file, if it exists it is overwritten, if it doesn't exist it is created and data is written
func WriteFile(filePath string, data []byte) error {
	if err := Mkdir(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return errs.Wrap(err, "WriteFile %s failed", filePath)
	}
	return nil
}

// AppendToFile appends the given data to the file at the given path, creating it if needed
func AppendToFile(filePath string, data []byte) error {
	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errs.Wrap(err, "OpenFile %s failed", filePath)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errs.Wrap(err, "Write %s failed", filePath)
	}
	return nil
}

// Touch creates an empty file at the given path, it does not truncate existing content
func Touch(path string) error {
	if err := Mkdir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errs.Wrap(err, "OpenFile %s failed", path)
	}
	return f.Close()
}

// TouchFileUnlessExists is like Touch, but is a no-op for existing files
func TouchFileUnlessExists(path string) error {
	if TargetExists(path) {
		return nil
	}
	return Touch(path)
}

// FindFileInPath will find a file by the given filename, starting from the given directory and
// walking up each parent directory until the file is found or the root is hit
func FindFileInPath(dir, filename string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", errs.Wrap(err, "Could not get absolute path of %s", dir)
	}

	for {
		candidate := filepath.Join(absDir, filename)
		if FileExists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			break
		}
		absDir = parent
	}

	return "", errs.New("Could not find %s above %s", filename, dir)
}

// ResolveUnique resolves the path to an absolute path with symlinks resolved,
// so paths pointing at the same directory compare equal
func ResolveUnique(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errs.Wrap(err, "Could not get absolute path of %s", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errs.Wrap(err, "Could not resolve symlinks for %s", abs)
	}
	return resolved, nil
}
