package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
	"github.com/taskenv/cli/internal/output"
)

// ErrorTipper is implemented by errors that carry suggestions for the user
type ErrorTipper interface {
	ErrorTips() []string
}

// renderError prints the user facing representation of the given error
func renderError(out output.Outputer, err error) {
	// Log the full chain with a stack when this isn't just user input
	if !locale.IsInputError(err) {
		var ee errs.Error
		stack := "not provided"
		if errors.As(err, &ee) {
			stack = ee.Stack().String()
		}
		logging.Error("Returning error:\n%s\nCreated at:\n%s", errs.JoinMessage(err), stack)
	}

	// A plain exit code propagated from a subshell already told its story
	var exitCode errs.ExitCodeable
	if errors.As(err, &exitCode) {
		var localizer locale.ErrorLocalizer
		if !errors.As(err, &localizer) {
			return
		}
	}

	out.Error(locale.ErrorMessage(err))

	for _, tip := range errorTips(err) {
		out.Notice(fmt.Sprintf("  [DISABLED]•[/RESET] %s", tip))
	}
}

// errorTips collects tips from the whole unwrap chain
func errorTips(err error) []string {
	var tips []string
	for err != nil {
		if tipper, ok := err.(ErrorTipper); ok {
			tips = append(tips, tipper.ErrorTips()...)
		}
		err = errors.Unwrap(err)
	}
	return tips
}

func handlePanics(r interface{}) bool {
	if r == nil {
		return false
	}

	logging.Error("%v - caught panic", r)
	logging.Debug("Panic: %v\n%s", r, string(debug.Stack()))

	fmt.Fprintf(os.Stderr, "An unexpected error occurred, check the error log for more information.\n%v\n", r)
	return true
}
