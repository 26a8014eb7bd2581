// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"overlock-cli/internal/dispatch"
	"overlock-cli/internal/issue"
	"overlock-cli/internal/lockfile"
	"overlock-cli/internal/overlay"
	"overlock-cli/internal/pin"
	"overlock-cli/internal/prefetch"

	"github.com/spf13/cobra"
)

var (
	// lockPath is the poetry.lock to read.
	lockPath string
	// outPath is the overlay file to generate.
	outPath string

	lockCmd = &cobra.Command{
		Use:   "lock",
		Short: "Generate a pinned source overlay from poetry.lock",
		Long: `Read a poetry.lock file, hash every git- and url-sourced package with the
Nix prefetch tools in parallel, and write an overlay that rebinds each of
those packages to a pinned, hash-verified fetch.

The overlay is all-or-nothing: if any single fetch fails, nothing is
written and overlock exits with the failing tool's exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLock(cmd.Context(), cmd.OutOrStdout(), lockPath, outPath)
		},
	}
)

func init() {
	lockCmd.Flags().StringVar(&lockPath, "lock", "poetry.lock", "path to the poetry.lock file")
	lockCmd.Flags().StringVar(&outPath, "out", "poetry-git-overlay.nix", "path of the overlay to generate")
}

// runLock is the whole pipeline: parse, filter, fetch in parallel, render,
// assemble, write. Each stage is fatal on error; there is no partial output.
func runLock(ctx context.Context, out io.Writer, lockPath, outPath string) error {
	lf, err := lockfile.Load(lockPath)
	if err != nil {
		reportIssue(lockfileIssueId(err))
		return err
	}

	descs := pin.FromLock(lf)
	logger.Debug("dispatching fetches",
		"packages", len(descs), "parallelism", cfg.Parallelism)

	runner := &prefetch.Runner{
		URLTool: cfg.Prefetch.URLTool,
		GitTool: cfg.Prefetch.GitTool,
		Logger:  logger,
	}
	pool := &dispatch.Pool{Limit: cfg.Parallelism}
	results := pool.Fetch(ctx, runner, descs)

	if i := dispatch.FirstFailure(results); i >= 0 {
		return reportFetchFailure(descs[i], results[i])
	}

	fragments := make([]string, len(descs))
	for i, d := range descs {
		fragment, err := d.Render(results[i].Output)
		if err != nil {
			reportIssue(issue.PrefetchOutputMalformedId)
			return err
		}
		fragments[i] = fragment
	}

	doc := &overlay.Document{Fragments: fragments}
	if err := doc.Write(outPath); err != nil {
		reportIssue(issue.OverlayWriteFailedId)
		return err
	}

	fmt.Fprintf(out, "Wrote %s\n", outPath)
	return nil
}

// reportFetchFailure surfaces one failed fetch: the tool's stderr is copied
// to our stderr verbatim and the process exit code mirrors the tool's.
func reportFetchFailure(d pin.Descriptor, res *prefetch.Result) error {
	fmt.Fprint(os.Stderr, res.ErrOutput)

	if res.Err != nil {
		// The tool never produced an exit status of its own: it was
		// missing, unspawnable, or canceled after another fetch failed.
		if errors.Is(res.Err, exec.ErrNotFound) {
			reportIssue(issue.PrefetchToolNotFoundId)
		}
		return &ExitError{
			Code: res.ExitCode,
			Err: issue.NewErrorContext().
				WithOperation("fetch package source").
				WithResource(d.Name()).
				Wrap(res.Err).
				BuildError(),
		}
	}

	reportIssue(issue.PrefetchFailedId)
	return &ExitError{Code: res.ExitCode}
}

// lockfileIssueId picks the issue page matching a lock file load error.
func lockfileIssueId(err error) issue.Id {
	if errors.Is(err, os.ErrNotExist) {
		return issue.LockfileNotFoundId
	}
	return issue.LockfileParseErrorId
}

// reportIssue renders the catalog page for id to stderr in verbose mode.
// The page supplements, never replaces, the error returned up the chain.
func reportIssue(id issue.Id) {
	if !verbose {
		return
	}
	is := issue.Get(id)
	if is == nil {
		return
	}
	if md, err := is.Render("auto"); err == nil {
		fmt.Fprint(os.Stderr, md)
	}
}
