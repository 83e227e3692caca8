package naiveref

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fska/kernel"
	"github.com/katalvlaran/fska/pointset"
)

// Weights returns, for every query point in Y, the log of the Gaussian
// kernel sum over every source point in X weighted by ws: out[i] =
// log(sum_j ws[j] * k(||X[:,j] - Y[:,i]||^2)). Returns ErrLengthMismatch
// if len(ws) != X.Cols(), or an error from mismatched dimensions between
// X and Y.
// Complexity: O(|X| * |Y| * d).
func Weights(X *pointset.Matrix, ws []float64, Y *pointset.Matrix) ([]float64, error) {
	if len(ws) != X.Cols() {
		return nil, ErrLengthMismatch
	}
	if X.Rows() != Y.Rows() {
		return nil, fmt.Errorf("naiveref: X has %d rows but Y has %d", X.Rows(), Y.Rows())
	}

	k := kernel.New(X.Rows())
	wsLog := make([]float64, len(ws))
	for i, w := range ws {
		wsLog[i] = math.Log(w)
	}

	out := make([]float64, Y.Cols())
	terms := make([]float64, X.Cols())
	for i := 0; i < Y.Cols(); i++ {
		yp, err := Y.Col(i)
		if err != nil {
			return nil, err
		}

		maxWeight := math.Inf(-1)
		for j := 0; j < X.Cols(); j++ {
			xp, err := X.Col(j)
			if err != nil {
				return nil, err
			}

			dist := squaredDistance(xp, yp)
			terms[j] = wsLog[j] + k.LogK(dist)
			if terms[j] > maxWeight {
				maxWeight = terms[j]
			}
		}

		out[i] = kernel.LogSumExp(terms, maxWeight)
	}

	return out, nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for idx := range a {
		diff := a[idx] - b[idx]
		sum += diff * diff
	}
	return sum
}
