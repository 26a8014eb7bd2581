// SPDX-License-Identifier: MPL-2.0

package prefetch

type (
	// Result is the outcome of one prefetch tool invocation.
	//
	// Exactly one of two shapes is meaningful:
	//   - Success: ExitCode 0, Err nil, Output holds the tool's stdout.
	//   - Failure: non-zero ExitCode (the tool's own status when it ran up
	//     to process exit, 1 for spawn failures or cancellation), ErrOutput
	//     holds whatever the tool wrote to stderr, and Err is set when the
	//     failure happened outside the tool itself.
	Result struct {
		// ExitCode is the process exit status (0 = success).
		ExitCode ExitCode
		// Output is the captured standard output.
		Output string
		// ErrOutput is the captured standard error.
		ErrOutput string
		// Err is set for failures that are not a plain non-zero exit:
		// the tool was missing, could not be spawned, or the context was
		// canceled before or during the run.
		Err error
	}
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Err: err}
}

// Success reports whether the invocation completed with exit code 0.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Err == nil
}
