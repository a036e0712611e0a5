package errs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/taskenv/cli/internal/osutils/stacktrace"
	"github.com/taskenv/cli/internal/rtutils"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() *stacktrace.Stacktrace
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	msg     string
	wrapped error
	stack   *stacktrace.Stacktrace
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.msg
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() *stacktrace.Stacktrace {
	return e.stack
}

func newError(err string, wrapTarget error) error {
	return &WrappedErr{
		err,
		wrapTarget,
		stacktrace.GetWithSkip([]string{rtutils.CurrentFile()}),
	}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// JoinMessage joins all error messages in the Unwrap stack
func JoinMessage(err error) string {
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return strings.Join(message, ": ")
}

// Matches checks if the given error, or any error it wraps, is of the same
// type as the given target. Unlike errors.As it can be handed a throwaway
// instance, eg. Matches(err, &ErrTimeout{}).
func Matches(err error, target interface{}) bool {
	targetType := reflect.TypeOf(target)
	for err != nil {
		if reflect.TypeOf(err) == targetType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
