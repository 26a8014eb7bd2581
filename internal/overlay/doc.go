// SPDX-License-Identifier: MPL-2.0

// Package overlay assembles rendered package fragments into the generated
// Nix overlay document and writes it out.
//
// The document has a fixed two-line header ("{ pkgs }:" / "final: prev: {"),
// the fragments in lock order indented by two spaces, and a closing brace.
// It is only materialized after every fetch has succeeded; there is no
// partial or streamed write.
package overlay
