// Package engine implements the dual-tree recursion at the heart of the
// fast kernel summation: given a decorated source tree and a decorated
// query tree, it descends pairs of nodes, choosing at each pair among
// four actions — prune (far-field centroid approximation), exact
// (leaf×leaf evaluation), fork (hand a small subtree pair to the worker
// pool to finish sequentially), or recurse (split the larger side) — per
// spec.md §4.5.
//
// The root call runs synchronously on the calling goroutine in
// "submitting" mode, accumulating futures for every task it hands to the
// pool; once the whole tree has been walked, Run drains every future
// before returning, surfacing the first error any task raised only after
// every future has been drained (spec.md §5, "no leaking tasks").
package engine
