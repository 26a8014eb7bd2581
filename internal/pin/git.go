// SPDX-License-Identifier: MPL-2.0

package pin

import (
	"context"
	"encoding/json"
	"fmt"

	"overlock-cli/internal/prefetch"
)

type (
	// GitPackage is a dependency fetched from a git repository at a pinned
	// revision. Revision must be non-empty and is the resolved commit when
	// the lock file recorded one.
	GitPackage struct {
		PkgName  string
		URL      string
		Revision string
	}

	// MalformedOutputError indicates that nix-prefetch-git exited
	// successfully but its stdout was not the expected JSON document.
	MalformedOutputError struct {
		Pkg   string
		Cause error
	}

	// gitMetadata is the subset of nix-prefetch-git's JSON output we
	// consume: the resolved URL and revision plus the content hash.
	gitMetadata struct {
		URL    string `json:"url"`
		Rev    string `json:"rev"`
		Sha256 string `json:"sha256"`
	}
)

// Error implements the error interface.
func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed prefetch output for package %q: %v", e.Pkg, e.Cause)
	}
	return fmt.Sprintf("malformed prefetch output for package %q", e.Pkg)
}

// Unwrap returns the underlying parse error, if any.
func (e *MalformedOutputError) Unwrap() error { return e.Cause }

// Name returns the package name.
func (p *GitPackage) Name() string { return p.PkgName }

// Fetch clones the repository (with submodules) via nix-prefetch-git.
func (p *GitPackage) Fetch(ctx context.Context, r *prefetch.Runner) *prefetch.Result {
	return r.FetchGit(ctx, p.URL, p.Revision)
}

// Render binds the package to a fetchgit of the resolved URL and revision,
// verified by the reported hash. Returns MalformedOutputError if raw is not
// the JSON document nix-prefetch-git emits.
func (p *GitPackage) Render(raw string) (string, error) {
	var meta gitMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return "", &MalformedOutputError{Pkg: p.PkgName, Cause: err}
	}
	if meta.URL == "" || meta.Rev == "" || meta.Sha256 == "" {
		return "", &MalformedOutputError{
			Pkg:   p.PkgName,
			Cause: fmt.Errorf("missing url, rev, or sha256 in %q", raw),
		}
	}
	fragment := fmt.Sprintf(`%[1]s = prev.%[1]s.overridePythonAttrs (
  _: {
    src = pkgs.fetchgit {
      url = %[2]q;
      rev = %[3]q;
      sha256 = %[4]q;
    };
  }
);`, p.PkgName, meta.URL, meta.Rev, meta.Sha256)
	return fragment, nil
}
