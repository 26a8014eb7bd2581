// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Two layers work together:
//   - ActionableError carries structured context (operation, resource,
//     suggestions, cause) so failures can be shown as a one-liner by default
//     and as a full chain in verbose mode.
//   - The Issue catalog maps well-known overlock failure classes to
//     Markdown-formatted guidance rendered with glamour, for when a
//     one-liner is not enough.
package issue
