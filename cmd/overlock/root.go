// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for overlock.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"overlock-cli/internal/config"
	"overlock-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// logger writes progress to stderr; stdout is reserved for the final
	// "Wrote <out>" line.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "overlock",
		Short: "Pin non-index Poetry dependencies for Nix builds",
		Long: TitleStyle.Render("overlock") + SubtitleStyle.Render(" - Pin non-index Poetry dependencies for Nix builds") + `

overlock reads a poetry.lock file, finds the packages that come from git
repositories or direct URLs rather than the package index, hashes each
source with the Nix prefetch tools in parallel, and writes a Nix overlay
that rebinds every such package to a pinned, hash-verified fetch.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'poetry lock' in your project
  2. Run 'overlock lock' next to the poetry.lock file
  3. Import the generated poetry-git-overlay.nix from your Nix expression

` + SubtitleStyle.Render("Examples:") + `
  overlock lock                         Pin using ./poetry.lock
  overlock lock --lock api/poetry.lock  Pin a lock file elsewhere
  overlock lock --out overlay.nix       Choose the output path`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/overlock/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(lockCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// A broken config never blocks a run; defaults apply.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
