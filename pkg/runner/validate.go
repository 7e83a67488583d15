// Package runner provides the command line entry point for ufc.
package runner

import (
	"errors"
	"fmt"

	"ufc/pkg/commands"
	"ufc/pkg/supervisor"
)

// Exit codes used by the wrapper itself.
const (
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks a bad invocation of the wrapper.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// exitCodeFor maps an error returned by the root command to a process exit
// code. Palette configuration errors fall through to ExitError.
func exitCodeFor(err error) int {
	var usageErr *UsageError
	var launchErr *supervisor.LaunchError

	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr), errors.Is(err, commands.ErrUnsupported):
		return ExitUsage
	case errors.As(err, &launchErr):
		return launchErr.ExitCode()
	default:
		return ExitError
	}
}

// validateInvocation checks the wrapper's own flags and resolves the wrapped
// command's palette table.
func validateInvocation(globals []string, name string, universal bool) (*commands.Definition, error) {
	if err := CheckDuplicateFlags(globals, GlobalFlagGroups()); err != nil {
		return nil, &UsageError{Err: err}
	}
	return commands.Resolve(name, universal)
}
