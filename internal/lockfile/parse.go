// SPDX-License-Identifier: MPL-2.0

package lockfile

import (
	"os"

	"overlock-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses a poetry.lock file from disk.
func Load(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the --lock flag
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read lock file").
			WithResource(path).
			WithSuggestion("Run 'poetry lock' to generate poetry.lock").
			WithSuggestion("Pass --lock if the file lives somewhere else").
			Wrap(err).
			BuildError()
	}
	lf, err := Parse(data)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse lock file").
			WithResource(path).
			WithSuggestion("Check that the file is a poetry.lock TOML document").
			WithSuggestion("Re-run 'poetry lock' to regenerate it").
			Wrap(err).
			BuildError()
	}
	return lf, nil
}

// Parse decodes poetry.lock TOML content.
func Parse(data []byte) (*Lockfile, error) {
	var lf Lockfile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, err
	}
	return &lf, nil
}
