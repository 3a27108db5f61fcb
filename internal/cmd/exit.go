package cmd

import "fmt"

// ExitError signals a non-zero process exit code whose diagnostics have
// already been written to the error stream. main unwraps it to pick the
// exit code without printing anything further.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
