package geometry

import "fmt"

// HyperRectangle is an axis-aligned box in d dimensions, represented by
// two d-vectors Lo and Hi with Lo[k] <= Hi[k] for every axis k.
type HyperRectangle struct {
	Lo []float64
	Hi []float64
}

// FromPoints returns the tightest HyperRectangle containing every point in
// points. Each point must have the same length; the first point's length
// fixes the dimension. Returns ErrEmptyInput if points is empty.
// Complexity: O(len(points) * d).
func FromPoints(points [][]float64) (HyperRectangle, error) {
	if len(points) == 0 {
		return HyperRectangle{}, ErrEmptyInput
	}

	d := len(points[0])
	lo := make([]float64, d)
	hi := make([]float64, d)
	copy(lo, points[0])
	copy(hi, points[0])

	for _, p := range points[1:] {
		if len(p) != d {
			return HyperRectangle{}, fmt.Errorf("FromPoints: %w", ErrDimensionMismatch)
		}
		for k := 0; k < d; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}

	return HyperRectangle{Lo: lo, Hi: hi}, nil
}

// Union returns the smallest HyperRectangle containing both a and b.
// Returns ErrDimensionMismatch if a and b have differing dimension.
// Complexity: O(d).
func Union(a, b HyperRectangle) (HyperRectangle, error) {
	if len(a.Lo) != len(b.Lo) {
		return HyperRectangle{}, fmt.Errorf("Union: %w", ErrDimensionMismatch)
	}

	d := len(a.Lo)
	lo := make([]float64, d)
	hi := make([]float64, d)
	for k := 0; k < d; k++ {
		lo[k] = minF(a.Lo[k], b.Lo[k])
		hi[k] = maxF(a.Hi[k], b.Hi[k])
	}

	return HyperRectangle{Lo: lo, Hi: hi}, nil
}

// MinMaxSqDist returns (dMin², dMax²): the minimum and maximum possible
// squared Euclidean distance between any point a in r and any point b in
// other, summed axis by axis. Overlapping axis intervals contribute 0 to
// dMin². Returns ErrDimensionMismatch on differing dimension.
// Complexity: O(d).
func (r HyperRectangle) MinMaxSqDist(other HyperRectangle) (dMin2, dMax2 float64, err error) {
	if len(r.Lo) != len(other.Lo) {
		return 0, 0, fmt.Errorf("MinMaxSqDist: %w", ErrDimensionMismatch)
	}

	for k := 0; k < len(r.Lo); k++ {
		// Minimum gap on this axis: positive only when the intervals
		// are disjoint; zero when they overlap.
		gap := maxF(0, maxF(r.Lo[k]-other.Hi[k], other.Lo[k]-r.Hi[k]))
		dMin2 += gap * gap

		// Maximum spread on this axis: the farthest pair of endpoints.
		spread := maxF(r.Hi[k]-other.Lo[k], other.Hi[k]-r.Lo[k])
		dMax2 += spread * spread
	}

	return dMin2, dMax2, nil
}

// minF and maxF avoid pulling in math.Min/math.Max, which pay for NaN and
// signed-zero handling this package's callers never trigger.
func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
