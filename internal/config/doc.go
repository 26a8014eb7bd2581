// SPDX-License-Identifier: MPL-2.0

// Package config loads overlock's configuration.
//
// Configuration lives in a TOML file under the platform config directory
// (XDG on Linux, Application Support on macOS, APPDATA on Windows) and can
// be overridden per-key through OVERLOCK_* environment variables. Loading
// is layered via viper: defaults, then file, then environment. A missing
// config file is not an error; defaults apply.
package config
