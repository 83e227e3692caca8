// Package fska ties pointset, kdtree, sourcetree, querytree, workerpool,
// and engine together into the single call most callers need: Run builds
// a worker pool, builds the source and query trees concurrently, runs the
// dual-tree descent, drains outstanding work, and returns per-query-point
// log-weights in the caller's original column order.
//
// Run may reorder the columns of X and Y in place during tree
// construction (spec.md §6); callers that need the originals preserved
// should clone first with pointset.Matrix.Clone.
package fska
