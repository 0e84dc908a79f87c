package dispatch

import "fmt"

// MissingScriptError is returned when the companion script for the current
// platform does not exist. No subprocess is started in that case.
type MissingScriptError struct {
	Path string
}

func (e *MissingScriptError) Error() string {
	return fmt.Sprintf("companion script not found: %s", e.Path)
}

// SubprocessError is returned when the companion script could not be
// launched or exited non-zero. ExitCode is -1 when the process never ran.
type SubprocessError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}
