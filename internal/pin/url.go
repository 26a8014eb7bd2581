// SPDX-License-Identifier: MPL-2.0

package pin

import (
	"context"
	"fmt"
	"strings"

	"overlock-cli/internal/prefetch"
)

// URLPackage is a dependency fetched from a direct archive URL.
// URL must be non-empty.
type URLPackage struct {
	PkgName string
	URL     string
}

// Name returns the package name.
func (p *URLPackage) Name() string { return p.PkgName }

// Fetch hashes the unpacked archive via nix-prefetch-url.
func (p *URLPackage) Fetch(ctx context.Context, r *prefetch.Runner) *prefetch.Result {
	return r.FetchURL(ctx, p.URL)
}

// Render binds the package to a fetchzip of the recorded URL, verified by
// the hash the prefetch tool printed. Trailing whitespace (the tool's final
// newline) is stripped from the raw output.
func (p *URLPackage) Render(raw string) (string, error) {
	hash := strings.TrimRight(raw, " \t\r\n")
	fragment := fmt.Sprintf(`%[1]s = prev.%[1]s.overridePythonAttrs (
  _: {
    src = pkgs.fetchzip {
      url = %[2]q;
      sha256 = %[3]q;
    };
  }
);`, p.PkgName, p.URL, hash)
	return fragment, nil
}
