// SPDX-License-Identifier: MPL-2.0

package config

import "overlock-cli/internal/prefetch"

type (
	// Config is the loaded overlock configuration.
	Config struct {
		// Parallelism bounds concurrent prefetch invocations.
		// Zero means one worker per available CPU.
		Parallelism int `mapstructure:"parallelism"`

		Prefetch PrefetchConfig `mapstructure:"prefetch"`
		UI       UIConfig       `mapstructure:"ui"`
	}

	// PrefetchConfig selects the external hashing tools.
	PrefetchConfig struct {
		// URLTool is the executable used for url-sourced packages.
		URLTool string `mapstructure:"url_tool"`
		// GitTool is the executable used for git-sourced packages.
		GitTool string `mapstructure:"git_tool"`
	}

	// UIConfig holds output preferences.
	UIConfig struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Parallelism: 0,
		Prefetch: PrefetchConfig{
			URLTool: prefetch.DefaultURLTool,
			GitTool: prefetch.DefaultGitTool,
		},
	}
}
