// SPDX-License-Identifier: MPL-2.0

package prefetch

import (
	"errors"
	"os/exec"
)

// ExitCode represents a process exit status code.
// Exit codes are in the range 0-255 on POSIX systems.
// The zero value (0) means success.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// exitCodeFromError maps an exec.Cmd.Run error to an ExitCode.
// A nil error is success; an *exec.ExitError carries the process status;
// anything else (spawn failure, canceled context) maps to 1.
func exitCodeFromError(err error) ExitCode {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExitCode(exitErr.ExitCode())
	}
	return 1
}
