// SPDX-License-Identifier: MPL-2.0

// Package dispatch fans prefetch work out across a bounded worker pool.
//
// All units are submitted eagerly, each result is written into its own
// slot, and the join returns results in submission order regardless of
// completion order. The first failing unit cancels the shared context so
// still-running external tools are interrupted and queued units are
// skipped instead of spending network time on a run that already failed.
package dispatch
