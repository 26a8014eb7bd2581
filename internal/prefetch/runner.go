// SPDX-License-Identifier: MPL-2.0

package prefetch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/charmbracelet/log"
)

const (
	// DefaultURLTool hashes an unpacked archive fetched from a URL.
	DefaultURLTool = "nix-prefetch-url"
	// DefaultGitTool clones a repository at a revision and reports metadata.
	DefaultGitTool = "nix-prefetch-git"
)

// Runner invokes the external prefetch tools. Tool names may be bare
// executables resolved via PATH or absolute paths (tests rely on the latter).
type Runner struct {
	// URLTool overrides the nix-prefetch-url executable.
	URLTool string
	// GitTool overrides the nix-prefetch-git executable.
	GitTool string
	// Logger receives per-invocation debug lines. Nil disables logging.
	Logger *log.Logger
}

// NewRunner creates a Runner with the default tool names.
func NewRunner() *Runner {
	return &Runner{
		URLTool: DefaultURLTool,
		GitTool: DefaultGitTool,
	}
}

// FetchURL fetches and unpacks the archive at url, reporting its content
// hash on stdout.
func (r *Runner) FetchURL(ctx context.Context, url string) *Result {
	return r.captureRun(ctx, r.URLTool, "--unpack", url)
}

// FetchGit clones the repository at rev, including nested submodules, and
// reports a JSON metadata document (resolved url, rev, sha256) on stdout.
func (r *Runner) FetchGit(ctx context.Context, url, rev string) *Result {
	return r.captureRun(ctx, r.GitTool, "--fetch-submodules", "--url", url, "--rev", rev)
}

// captureRun executes one tool synchronously with both output streams
// captured. Any non-zero exit becomes a failure Result; there are no retries.
func (r *Runner) captureRun(ctx context.Context, tool string, args ...string) *Result {
	if r.Logger != nil {
		r.Logger.Debug("running prefetch tool", "tool", tool, "args", args)
	}

	cmd := exec.CommandContext(ctx, tool, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		ExitCode:  exitCodeFromError(err),
		Output:    stdout.String(),
		ErrOutput: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Spawn failure or cancellation, not a tool exit status.
			result.Err = err
		}
		// Prefer the context error so callers can tell cancellation apart
		// from a genuine tool failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.Err = ctxErr
		}
		if r.Logger != nil {
			r.Logger.Debug("prefetch tool failed", "tool", tool, "exit_code", int(result.ExitCode), "err", err)
		}
	}

	return result
}
