package kernel

import "math"

// log2pi is log(2*pi), precomputed once since every LogK call needs it.
var log2pi = math.Log(2 * math.Pi)

// Gaussian is the isotropic standard multivariate normal kernel in d
// dimensions with bandwidth 1. It carries only d because that is the only
// parameter the normalizing constant depends on.
type Gaussian struct {
	halfD float64 // d/2, cached so LogK is a single multiply-add
}

// New returns a Gaussian kernel for d dimensions. d must be positive; the
// caller is expected to have validated shapes upstream (see fska.Run),
// so New does not itself return an error.
func New(d int) Gaussian {
	return Gaussian{halfD: float64(d) / 2}
}

// LogK returns log k(r²) = -0.5*r² - (d/2)*log(2*pi). Always finite for
// finite r² (including r² == 0).
// Complexity: O(1).
func (g Gaussian) LogK(rSquared float64) float64 {
	return -0.5*rSquared - g.halfD*log2pi
}

// K returns k(r²) = exp(LogK(r²)) in linear space. Used where the
// dual-tree pruning predicate needs a ratio of kernel bounds rather than
// a log-space difference.
// Complexity: O(1).
func (g Gaussian) K(rSquared float64) float64 {
	return math.Exp(g.LogK(rSquared))
}

// LogSumExp returns the numerically stable log(sum(exp(terms))), given
// max(terms) precomputed by the caller (naiveref.Weights already tracks
// the running maximum while building the terms, so recomputing it here
// would be wasted work). max == -Inf is treated as "terms are all -Inf" and
// LogSumExp returns -Inf without touching terms.
// Complexity: O(len(terms)).
func LogSumExp(terms []float64, max float64) float64 {
	if math.IsInf(max, -1) {
		return math.Inf(-1)
	}

	var sum float64
	for _, t := range terms {
		sum += math.Exp(t - max)
	}

	return max + math.Log(sum)
}

// PairwiseLogSumExp returns log(exp(a) + exp(b)) without allocating,
// the two-term shortcut LogSumExp callers use when merging a single new
// contribution into an existing accumulator slot. If either argument is
// -Inf, the other is returned unchanged.
// Complexity: O(1).
func PairwiseLogSumExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}

	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}

	return hi + math.Log1p(math.Exp(lo-hi))
}
