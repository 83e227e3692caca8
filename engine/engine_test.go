package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fska/engine"
	"github.com/katalvlaran/fska/kdtree"
	"github.com/katalvlaran/fska/kernel"
	"github.com/katalvlaran/fska/naiveref"
	"github.com/katalvlaran/fska/pointset"
	"github.com/katalvlaran/fska/querytree"
	"github.com/katalvlaran/fska/sourcetree"
	"github.com/katalvlaran/fska/workerpool"
	"github.com/stretchr/testify/require"
)

// built bundles everything a descent needs: the permuted source/query
// trees and matrices, plus the permutation to map results back to
// caller-order columns.
type built struct {
	xRoot     *sourcetree.Node
	yRoot     *querytree.Node
	X, Y      *pointset.Matrix
	wsLog     []float64
	yInverse  []int
	xOriginal [][]float64
	yOriginal [][]float64
}

func build(t *testing.T, xs [][]float64, ws []float64, ys [][]float64, nMin int) built {
	t.Helper()

	X, err := pointset.NewMatrixFromColumns(xs)
	require.NoError(t, err)
	Y, err := pointset.NewMatrixFromColumns(ys)
	require.NoError(t, err)

	xTree, xOrder, _, err := kdtree.Build(X, nMin)
	require.NoError(t, err)
	yTree, _, yInverse, err := kdtree.Build(Y, nMin)
	require.NoError(t, err)

	permutedWs := make([]float64, len(ws))
	wsLog := make([]float64, len(ws))
	for pos, orig := range xOrder {
		permutedWs[pos] = ws[orig]
		wsLog[pos] = math.Log(ws[orig])
	}

	xRoot, err := sourcetree.Build(xTree, X, permutedWs)
	require.NoError(t, err)
	yRoot, err := querytree.Build(yTree, Y)
	require.NoError(t, err)

	return built{
		xRoot: xRoot, yRoot: yRoot, X: X, Y: Y, wsLog: wsLog, yInverse: yInverse,
		xOriginal: xs, yOriginal: ys,
	}
}

func runEngine(t *testing.T, b built, eps float64, threadCount int, opts ...engine.Option) []float64 {
	t.Helper()

	pool, err := workerpool.New(threadCount)
	require.NoError(t, err)
	defer pool.Close()

	e, err := engine.New(b.X, b.wsLog, b.Y, kernel.New(b.X.Rows()), eps, pool, opts...)
	require.NoError(t, err)

	logWeights := make([]float64, b.Y.Cols())
	for i := range logWeights {
		logWeights[i] = math.Inf(-1)
	}

	require.NoError(t, e.Run(b.xRoot, b.yRoot, logWeights))

	// Un-permute: out[originalQueryIdx] = logWeights[permutedPos].
	out := make([]float64, len(logWeights))
	for orig, pos := range b.yInverse {
		out[orig] = logWeights[pos]
	}
	return out
}

func randomPointCloud(rng *rand.Rand, d, n int) [][]float64 {
	cols := make([][]float64, n)
	for i := range cols {
		p := make([]float64, d)
		for k := range p {
			p[k] = rng.Float64()*20 - 10
		}
		cols[i] = p
	}
	return cols
}

func TestNewInvalidEpsilon(t *testing.T) {
	pool, err := workerpool.New(1)
	require.NoError(t, err)
	defer pool.Close()

	X, _ := pointset.NewMatrixFromColumns([][]float64{{0}})
	Y, _ := pointset.NewMatrixFromColumns([][]float64{{0}})
	_, err = engine.New(X, []float64{0}, Y, kernel.New(1), 0, pool)
	require.ErrorIs(t, err, engine.ErrInvalidEpsilon)
}

func TestWithStopNElemPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { engine.WithStopNElem(0) })
}

func TestWithMaxFuturesPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { engine.WithMaxFutures(10, 10) })
	require.Panics(t, func() { engine.WithMaxFutures(10, 0) })
}

func TestExactModeMatchesNaiveReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	xs := randomPointCloud(rng, 2, 30)
	ys := randomPointCloud(rng, 2, 12)
	ws := make([]float64, len(xs))
	for i := range ws {
		ws[i] = 1 + rng.Float64()
	}

	b := build(t, xs, ws, ys, 4)

	X, _ := pointset.NewMatrixFromColumns(xs)
	Y, _ := pointset.NewMatrixFromColumns(ys)
	want, err := naiveref.Weights(X, ws, Y)
	require.NoError(t, err)

	got := runEngine(t, b, 1e-300, 1)
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-6, "query %d", i)
	}
}

func TestThreadingEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	xs := randomPointCloud(rng, 3, 40)
	ys := randomPointCloud(rng, 3, 15)
	ws := make([]float64, len(xs))
	for i := range ws {
		ws[i] = 1 + rng.Float64()
	}

	single := build(t, xs, ws, ys, 3)
	multi := build(t, xs, ws, ys, 3)

	gotSingle := runEngine(t, single, 1e-6, 1)
	gotMulti := runEngine(t, multi, 1e-6, 8)

	for i := range gotSingle {
		require.InDelta(t, gotSingle[i], gotMulti[i], 1e-6, "query %d", i)
	}
}

func TestForkAndThrottlePathsExercised(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xs := randomPointCloud(rng, 2, 200)
	ys := randomPointCloud(rng, 2, 80)
	ws := make([]float64, len(xs))
	for i := range ws {
		ws[i] = 1
	}

	b := build(t, xs, ws, ys, 2)

	X, _ := pointset.NewMatrixFromColumns(xs)
	Y, _ := pointset.NewMatrixFromColumns(ys)
	want, err := naiveref.Weights(X, ws, Y)
	require.NoError(t, err)

	// Tiny thresholds force rule C (fork) to fire constantly and the
	// throttle to drain mid-descent.
	got := runEngine(t, b, 1e-12, 4, engine.WithStopNElem(8), engine.WithMaxFutures(4, 1))
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-6, "query %d", i)
	}
}

func TestWeightZeroAbsorption(t *testing.T) {
	xs := [][]float64{{0, 0}, {5, 5}}
	ys := [][]float64{{0, 0}}
	ws := []float64{1, 0}

	b := build(t, xs, ws, ys, 1)
	got := runEngine(t, b, 1e-300, 1)

	withoutZero := build(t, [][]float64{{0, 0}}, []float64{1}, ys, 1)
	wantAlone := runEngine(t, withoutZero, 1e-300, 1)

	require.InDelta(t, wantAlone[0], got[0], 1e-9)
}

func TestPruneRuleProducesFiniteApproximation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	xs := randomPointCloud(rng, 2, 100)
	ys := randomPointCloud(rng, 2, 20)
	ws := make([]float64, len(xs))
	for i := range ws {
		ws[i] = 1
	}

	b := build(t, xs, ws, ys, 8)
	got := runEngine(t, b, 0.5, 1)

	for i, v := range got {
		require.False(t, math.IsNaN(v), "query %d is NaN", i)
		require.False(t, math.IsInf(v, 1), "query %d is +Inf", i)
	}
}
