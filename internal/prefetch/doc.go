// SPDX-License-Identifier: MPL-2.0

// Package prefetch invokes the external Nix prefetch tools and captures
// their output.
//
// Runner is the single entry point: FetchURL shells out to nix-prefetch-url
// (hash on stdout), FetchGit to nix-prefetch-git (JSON document on stdout).
// Both return a Result carrying the captured stdout/stderr and a typed
// ExitCode extracted from the process status. The package never retries and
// never interprets tool output; interpretation belongs to the pin package.
package prefetch
