package fska

import (
	"math"

	"github.com/katalvlaran/fska/engine"
	"github.com/katalvlaran/fska/kdtree"
	"github.com/katalvlaran/fska/kernel"
	"github.com/katalvlaran/fska/pointset"
	"github.com/katalvlaran/fska/querytree"
	"github.com/katalvlaran/fska/sourcetree"
	"github.com/katalvlaran/fska/workerpool"
)

// Run computes, for every column y_i of Y, log(sum_j ws[j] * k(||x_j -
// y_i||^2)) over every column x_j of X, approximated to relative
// tolerance eps via the dual-tree engine. nMin bounds k-d tree leaf size;
// nThreads sizes the worker pool. Returns one value per column of Y, in
// Y's original column order.
//
// Run permutes the columns of X and Y in place while building their
// trees (spec.md §6); callers needing the originals intact should pass
// clones.
// Complexity: expected O((|X|+|Y|) log(|X|+|Y|)) for eps > 0; O(|X|*|Y|)
// in the worst case (no pruning, e.g. eps very small or points dense).
func Run(X *pointset.Matrix, ws []float64, Y *pointset.Matrix, nMin int, eps float64, nThreads int, opts ...Option) ([]float64, error) {
	if nMin < 1 {
		return nil, ErrInvalidNMin
	}
	if eps <= 0 {
		return nil, ErrInvalidEpsilon
	}
	if nThreads < 1 {
		return nil, ErrInvalidThreadCount
	}
	if X.Rows() != Y.Rows() || len(ws) != X.Cols() {
		return nil, ErrShapeMismatch
	}
	if X.Cols() == 0 || Y.Cols() == 0 {
		return nil, ErrEmptyInput
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.profilePath != "" {
		stop, err := startProfile(o.profilePath)
		if err != nil {
			return nil, err
		}
		defer stop()
	}

	pool, err := workerpool.New(nThreads)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	var (
		xRoot *sourcetree.Node
		yRoot *querytree.Node
		wsLog []float64
		yInv  []int
	)

	fx := pool.Submit(func() error {
		tree, order, _, buildErr := kdtree.Build(X, nMin)
		if buildErr != nil {
			return buildErr
		}

		permutedWs := make([]float64, len(ws))
		log := make([]float64, len(ws))
		for pos, orig := range order {
			permutedWs[pos] = ws[orig]
			log[pos] = math.Log(ws[orig])
		}

		root, buildErr := sourcetree.Build(tree, X, permutedWs)
		if buildErr != nil {
			return buildErr
		}

		xRoot, wsLog = root, log
		return nil
	})

	fy := pool.Submit(func() error {
		tree, _, inverse, buildErr := kdtree.Build(Y, nMin)
		if buildErr != nil {
			return buildErr
		}

		root, buildErr := querytree.Build(tree, Y)
		if buildErr != nil {
			return buildErr
		}

		yRoot, yInv = root, inverse
		return nil
	})

	if err := fx.Get(); err != nil {
		return nil, err
	}
	if err := fy.Get(); err != nil {
		return nil, err
	}

	eng, err := engine.New(X, wsLog, Y, kernel.New(X.Rows()), eps, pool, o.engineOpts...)
	if err != nil {
		return nil, err
	}

	logWeights := make([]float64, Y.Cols())
	for i := range logWeights {
		logWeights[i] = math.Inf(-1)
	}

	if err := eng.Run(xRoot, yRoot, logWeights); err != nil {
		return nil, err
	}

	out := make([]float64, len(logWeights))
	for orig, pos := range yInv {
		out[orig] = logWeights[pos]
	}

	return out, nil
}
