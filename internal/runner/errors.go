package runner

import "fmt"

// ExecError is the single error kind exposed by the runner. It carries the
// original argument vector plus either the exit code and captured stderr
// (non-zero exit) or the underlying launch/wait error.
type ExecError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

// Error formats the failure with the argument vector, and with the exit
// code and stderr text when the child exited non-zero.
func (e *ExecError) Error() string {
	if e.ExitCode != 0 {
		msg := fmt.Sprintf("process %v returned a non-zero exit code %d", e.Args, e.ExitCode)
		if e.Stderr != "" {
			msg += ". " + e.Stderr
		}
		return msg
	}
	return fmt.Sprintf("process execution failed %v: %v", e.Args, e.Err)
}

// Unwrap returns the underlying error, if any.
func (e *ExecError) Unwrap() error {
	return e.Err
}
