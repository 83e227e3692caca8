// Package kdtree builds balanced, median-split k-d trees over a
// pointset.Matrix for use by sourcetree and querytree.
//
// Build permutes the matrix's columns in place so that every leaf's point
// indices form a contiguous range; it returns the permutation used (as a
// "position -> original index" array) and its inverse ("original index ->
// position"), so callers can report results in the caller's original
// column order (spec.md §3, §4.6 step 7).
//
// A secondary entry point, LeafLayout, flattens the tree's leaves into a
// single index slice plus per-leaf counts — the Go equivalent of the
// original implementation's test_KD_note introspection hook (see
// SPEC_FULL.md §3), used by the partition and duplicate-point tests.
package kdtree
