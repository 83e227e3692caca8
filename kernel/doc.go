// Package kernel evaluates the isotropic standard multivariate normal
// density in log space and provides the numerically stable log-sum-exp
// accumulation the dual-tree engine relies on.
//
// The kernel has a fixed bandwidth of 1: callers that need a different
// bandwidth rescale their point clouds before calling into this package,
// not by parameterizing the kernel itself (spec.md Non-goals: no
// anisotropic or user-defined kernels).
//
// Complexity: every function here is O(1) except LogSumExp, which is
// O(len(terms)).
package kernel
