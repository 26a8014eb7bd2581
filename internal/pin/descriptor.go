// SPDX-License-Identifier: MPL-2.0

package pin

import (
	"context"

	"overlock-cli/internal/lockfile"
	"overlock-cli/internal/prefetch"
)

// Descriptor is one non-index dependency entry. Implementations are
// immutable value types constructed once from lock records.
type Descriptor interface {
	// Name returns the package name as recorded in the lock file.
	Name() string
	// Fetch invokes the matching external prefetch tool synchronously.
	Fetch(ctx context.Context, r *prefetch.Runner) *prefetch.Result
	// Render turns a successful fetch's raw stdout into a Nix override
	// fragment for this package. The fragment is unindented; the overlay
	// package indents it relative to the document body.
	Render(raw string) (string, error)
}

// FromLock wraps the lock file's git- and url-sourced packages as
// descriptors, preserving lock order. Packages with any other source kind
// (including index-resolved ones, which have no source table at all) need
// no overlay entry and are skipped.
func FromLock(lf *lockfile.Lockfile) []Descriptor {
	var descs []Descriptor
	for i := range lf.Packages {
		pkg := &lf.Packages[i]
		if !pkg.IsPinnable() {
			continue
		}
		switch pkg.Source.Type {
		case lockfile.SourceTypeURL:
			descs = append(descs, &URLPackage{PkgName: pkg.Name, URL: pkg.Source.URL})
		case lockfile.SourceTypeGit:
			descs = append(descs, &GitPackage{
				PkgName:  pkg.Name,
				URL:      pkg.Source.URL,
				Revision: pkg.Source.Revision(),
			})
		}
	}
	return descs
}
