package supervisor

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Exit codes used when the wrapped command cannot be started, following the
// shell convention.
const (
	ExitNotFound      = 127
	ExitNotExecutable = 126
)

var errNoCommand = errors.New("no command given")

// LaunchError reports a wrapped command that could not be started.
type LaunchError struct {
	Argv []string
	Err  error
}

func (e *LaunchError) Error() string {
	if len(e.Argv) == 0 {
		return fmt.Sprintf("failed to start command: %v", e.Err)
	}
	return fmt.Sprintf("failed to start %s: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitCode maps the launch failure to the code the wrapper exits with.
func (e *LaunchError) ExitCode() int {
	switch {
	case errors.Is(e.Err, exec.ErrNotFound), errors.Is(e.Err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(e.Err, fs.ErrPermission):
		return ExitNotExecutable
	default:
		return 1
	}
}

// exitCode converts the result of Wait into the child's exit status. A child
// terminated by a signal reports 0.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		return 0
	}
	return 1
}
