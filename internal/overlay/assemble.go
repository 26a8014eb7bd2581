// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"os"
	"strings"

	"overlock-cli/internal/issue"
)

// bodyIndent is the indentation of each fragment relative to the
// document body.
const bodyIndent = 2

const (
	header = "{ pkgs }:\nfinal: prev: {\n"
	footer = "}\n"
)

// Document is the ordered set of rendered fragments making up one overlay.
type Document struct {
	Fragments []string
}

// Indent prefixes every non-blank line of s with n spaces.
// Blank lines are left alone so the output carries no trailing whitespace.
func Indent(s string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Render produces the full document text. With zero fragments the body is
// empty and the result is exactly the header followed by the footer.
func (d *Document) Render() string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, fragment := range d.Fragments {
		sb.WriteString("\n")
		sb.WriteString(Indent(fragment, bodyIndent))
		sb.WriteString("\n")
	}
	sb.WriteString(footer)
	return sb.String()
}

// Write renders the document and writes it to path, overwriting any
// existing file.
func (d *Document) Write(path string) error {
	if err := os.WriteFile(path, []byte(d.Render()), 0o644); err != nil { //nolint:gosec // overlay is meant to be world-readable
		return issue.NewErrorContext().
			WithOperation("write overlay").
			WithResource(path).
			WithSuggestion("Check permissions on the output directory").
			WithSuggestion("Pass --out to choose a writable location").
			Wrap(err).
			BuildError()
	}
	return nil
}
