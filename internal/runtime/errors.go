package runtime

import (
	"errors"
	"fmt"
)

var (
	ErrRuntime             = errors.New("runtime error")
	ErrCommandFailed       = errors.New("command failed")
	ErrContainerNotRunning = errors.New("container not running")
)

// A command that could not be started or exited unsuccessfully.
type CommandError struct {
	Args  []string // Command line, including the program.
	Code  int      // Exit code, or -1 if the process never exited normally.
	Cause error    // Underlying error, if any.
}

func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("running %v: %s", e.Args, e.Cause)
	}
	return fmt.Sprintf("running %v: exit code %d", e.Args, e.Code)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}
