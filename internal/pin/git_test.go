// SPDX-License-Identifier: MPL-2.0

package pin

import (
	"errors"
	"strings"
	"testing"
)

func TestGitPackage_Render(t *testing.T) {
	t.Parallel()
	p := &GitPackage{PkgName: "bar", URL: "git://x", Revision: "deadbeef"}

	raw := `{"url": "git://x", "rev": "deadbeef", "sha256": "zzz", "fetchSubmodules": true}`
	fragment, err := p.Render(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"bar = prev.bar.overridePythonAttrs",
		`url = "git://x";`,
		`rev = "deadbeef";`,
		`sha256 = "zzz";`,
		"pkgs.fetchgit",
	} {
		if !strings.Contains(fragment, want) {
			t.Errorf("fragment missing %q:\n%s", want, fragment)
		}
	}
}

func TestGitPackage_Render_UsesResolvedMetadata(t *testing.T) {
	t.Parallel()
	// The tool reports what it actually fetched; the fragment must carry the
	// tool's resolved values, not the descriptor's inputs.
	p := &GitPackage{PkgName: "bar", URL: "git://x", Revision: "main"}

	raw := `{"url": "https://x.example/bar.git", "rev": "deadbeef", "sha256": "zzz"}`
	fragment, err := p.Render(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(fragment, `url = "https://x.example/bar.git";`) {
		t.Errorf("fragment does not use resolved url:\n%s", fragment)
	}
	if !strings.Contains(fragment, `rev = "deadbeef";`) {
		t.Errorf("fragment does not use resolved rev:\n%s", fragment)
	}
}

func TestGitPackage_Render_MalformedJSON(t *testing.T) {
	t.Parallel()
	p := &GitPackage{PkgName: "bar", URL: "git://x", Revision: "deadbeef"}

	_, err := p.Render("fatal: not json at all")
	if err == nil {
		t.Fatal("expected error for malformed output")
	}
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %T: %v", err, err)
	}
	if malformed.Pkg != "bar" {
		t.Errorf("Pkg = %q, want %q", malformed.Pkg, "bar")
	}
}

func TestGitPackage_Render_MissingFields(t *testing.T) {
	t.Parallel()
	p := &GitPackage{PkgName: "bar", URL: "git://x", Revision: "deadbeef"}

	tests := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"missing sha256", `{"url": "git://x", "rev": "deadbeef"}`},
		{"missing rev", `{"url": "git://x", "sha256": "zzz"}`},
	}
	for _, tt := range tests {
		if _, err := p.Render(tt.raw); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
