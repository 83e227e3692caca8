// Package naiveref implements the direct O(|X|*|Y|) Gaussian kernel
// summation with no tree, no pruning, and no concurrency. It exists as a
// correctness oracle for the dual-tree engine's approximate and exact
// modes: tests compare engine.Run's output against Weights rather than
// against hand-computed constants, since only a handful of trivial cases
// are tractable by hand.
//
// Grounded directly on the original implementation's naive() routine.
package naiveref
