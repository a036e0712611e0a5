package locale

import (
	"errors"

	"github.com/taskenv/cli/internal/osutils/stacktrace"
	"github.com/taskenv/cli/internal/rtutils"
)

var _ ErrorLocalizer = &LocalizedError{}

// LocalizedError is an error that has the concept of user facing (localized)
// errors as well as whether an error is due to user input or not
type LocalizedError struct {
	wrapped   error
	tips      []string
	localized string
	stack     *stacktrace.Stacktrace
	inputErr  bool
}

// Error is the error message
func (e *LocalizedError) Error() string {
	return e.localized
}

// LocaleError is the user facing error message, it's the same as Error() but identifies it as being user facing
func (e *LocalizedError) LocaleError() string {
	return e.localized
}

// Stack is the stacktrace leading up to where this error was triggered
func (e *LocalizedError) Stack() *stacktrace.Stacktrace {
	return e.stack
}

// Unwrap returns the parent error, if applicable
func (e *LocalizedError) Unwrap() error {
	return e.wrapped
}

// InputError returns whether this is an error due to user input
func (e *LocalizedError) InputError() bool {
	return e.inputErr
}

func (e *LocalizedError) ErrorTips() []string {
	return e.tips
}

func (e *LocalizedError) AddTips(tips ...string) {
	e.tips = append(e.tips, tips...)
}

// ErrorLocalizer represents a localized error
type ErrorLocalizer interface {
	error
	LocaleError() string
}

// ErrorInput represents a user input error
type ErrorInput interface {
	InputError() bool
}

// NewError creates a new error, it does a locale.Tl lookup of the given id, if the lookup fails it will use the
// locale string instead
func NewError(id string, args ...string) *LocalizedError {
	return WrapError(nil, id, args...)
}

// WrapError creates a new error that wraps the given error, it does a locale.Tl lookup of the given id, if the
// lookup fails it will use the locale string instead
func WrapError(err error, id string, args ...string) *LocalizedError {
	locale := id
	if len(args) > 0 {
		locale, args = args[0], args[1:]
	}

	l := &LocalizedError{}
	l.wrapped = err
	l.tips = []string{}
	l.localized = Tl(id, locale, args...)
	l.stack = stacktrace.GetWithSkip([]string{rtutils.CurrentFile()})

	return l
}

// NewInputError is like NewError but marks it as an input error
func NewInputError(id string, args ...string) *LocalizedError {
	return WrapInputError(nil, id, args...)
}

// WrapInputError is like WrapError but marks it as an input error
func WrapInputError(err error, id string, args ...string) *LocalizedError {
	l := WrapError(err, id, args...)
	l.inputErr = true
	return l
}

// IsInputError returns whether the given error is an input error
func IsInputError(err error) bool {
	var errInput ErrorInput
	for err != nil {
		if errors.As(err, &errInput) && errInput.InputError() {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// ErrorMessage returns the user facing message of the given error, walking the
// Unwrap stack until it finds a localized error
func ErrorMessage(err error) string {
	var localizer ErrorLocalizer
	if errors.As(err, &localizer) {
		return localizer.LocaleError()
	}
	return err.Error()
}
