// SPDX-License-Identifier: MPL-2.0

// Package lockfile models the subset of Poetry's poetry.lock document that
// overlock cares about: the package list and, for each package, the optional
// source table that records where the package comes from when it is not
// resolved from the package index.
//
// Parsing is schema-tolerant: unknown tables and fields are ignored so that
// lock files written by newer Poetry versions keep loading as long as the
// package/source shape is intact.
package lockfile
