// SPDX-License-Identifier: MPL-2.0

// Package pin models the packages that need a pinned source in the
// generated overlay.
//
// Descriptor is the polymorphic dependency entry: URLPackage and GitPackage
// each know how to fetch their own content hash (via a prefetch.Runner) and
// how to render the hash into a Nix override fragment, so per-kind branching
// stays inside the variant instead of leaking into the pipeline.
package pin
