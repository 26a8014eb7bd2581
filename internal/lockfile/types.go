// SPDX-License-Identifier: MPL-2.0

package lockfile

const (
	// SourceTypeGit marks a package fetched from a git repository.
	SourceTypeGit = "git"
	// SourceTypeURL marks a package fetched from a direct archive URL.
	SourceTypeURL = "url"
)

type (
	// Lockfile is a parsed poetry.lock document.
	Lockfile struct {
		Packages []Package `toml:"package"`
	}

	// Package is a single resolved dependency entry.
	Package struct {
		Name    string  `toml:"name"`
		Version string  `toml:"version"`
		Source  *Source `toml:"source"`
	}

	// Source records where a non-index package comes from. Git sources carry
	// Reference (the symbolic ref from pyproject.toml) and usually
	// ResolvedReference (the commit it resolved to at lock time).
	Source struct {
		Type              string `toml:"type"`
		URL               string `toml:"url"`
		Reference         string `toml:"reference"`
		ResolvedReference string `toml:"resolved_reference"`
	}
)

// IsPinnable reports whether the package needs an overlay entry, i.e. its
// source is a git repository or a direct URL rather than the package index.
func (p *Package) IsPinnable() bool {
	if p.Source == nil {
		return false
	}
	return p.Source.Type == SourceTypeGit || p.Source.Type == SourceTypeURL
}

// Revision returns the revision to pin a git source to, preferring the
// resolved commit over the symbolic reference.
func (s *Source) Revision() string {
	if s.ResolvedReference != "" {
		return s.ResolvedReference
	}
	return s.Reference
}
