package naiveref_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fska/naiveref"
	"github.com/katalvlaran/fska/pointset"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, cols [][]float64) *pointset.Matrix {
	t.Helper()
	m, err := pointset.NewMatrixFromColumns(cols)
	require.NoError(t, err)
	return m
}

func TestWeightsLengthMismatch(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0, 0}, {1, 1}})
	Y := mustMatrix(t, [][]float64{{0, 0}})

	_, err := naiveref.Weights(X, []float64{1}, Y)
	require.ErrorIs(t, err, naiveref.ErrLengthMismatch)
}

func TestWeightsSinglePointSameLocation(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0, 0, 0}})
	Y := mustMatrix(t, [][]float64{{0, 0, 0}})

	out, err := naiveref.Weights(X, []float64{1}, Y)
	require.NoError(t, err)
	require.Len(t, out, 1)
	// k(0) in 3 dims = (2*pi)^(-3/2); weight 1 contributes log of exactly that.
	want := -1.5 * math.Log(2*math.Pi)
	require.InDelta(t, want, out[0], 1e-9)
}

func TestWeightsTwoSourcesSumExceedsEither(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0}, {5}})
	Y := mustMatrix(t, [][]float64{{0}})

	out, err := naiveref.Weights(X, []float64{1, 1}, Y)
	require.NoError(t, err)

	single, err := naiveref.Weights(mustMatrix(t, [][]float64{{0}}), []float64{1}, Y)
	require.NoError(t, err)

	// Adding a second, far-away source can only increase the sum (all
	// kernel contributions are strictly positive), so the log-sum must be
	// at least as large as the log-sum from the closer source alone.
	require.Greater(t, out[0], single[0])
}

func TestWeightsZeroWeightSourceDoesNotContribute(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0}, {0}})
	Y := mustMatrix(t, [][]float64{{0}})

	withZero, err := naiveref.Weights(X, []float64{1, 0}, Y)
	require.NoError(t, err)

	withoutSecond, err := naiveref.Weights(mustMatrix(t, [][]float64{{0}}), []float64{1}, Y)
	require.NoError(t, err)

	require.InDelta(t, withoutSecond[0], withZero[0], 1e-9)
}

func TestWeightsMonotonicInDistance(t *testing.T) {
	Y := mustMatrix(t, [][]float64{{0}})

	near, err := naiveref.Weights(mustMatrix(t, [][]float64{{1}}), []float64{1}, Y)
	require.NoError(t, err)
	far, err := naiveref.Weights(mustMatrix(t, [][]float64{{10}}), []float64{1}, Y)
	require.NoError(t, err)

	require.Greater(t, near[0], far[0])
}
