package engine

import (
	"math"

	"github.com/katalvlaran/fska/kernel"
	"github.com/katalvlaran/fska/pointset"
	"github.com/katalvlaran/fska/querytree"
	"github.com/katalvlaran/fska/sourcetree"
	"github.com/katalvlaran/fska/workerpool"
)

// eta guards the pruning predicate's denominator against a 0/0 division
// when both the near and far kernel bounds evaluate to zero (points far
// enough apart that the Gaussian underflows). spec.md §9 fixes this at
// 1e-16. New rejects eps <= 0, so there is no eps=0 exact mode; a very
// small positive eps makes the prune rule fire only where the kernel
// bounds are (numerically) equal.
const eta = 1e-16

// Engine holds everything a dual-tree descent needs to read: the
// coordinate matrices in their tree-permuted column order,
// the permuted log-weights of the source points, the kernel, the
// approximation tolerance, and the pool used to fork subtree work.
type Engine struct {
	X     *pointset.Matrix // source points, columns in source-tree order
	WsLog []float64        // log(weight) of each source point, same order as X

	Y *pointset.Matrix // query points, columns in query-tree order

	Kernel kernel.Gaussian
	Eps    float64

	Pool *workerpool.Pool
	Opts Options
}

// New validates eps and returns an Engine ready to Run. points/weights are
// expected already permuted into tree order by the caller (fska.Run).
func New(X *pointset.Matrix, wsLog []float64, Y *pointset.Matrix, k kernel.Gaussian, eps float64, pool *workerpool.Pool, opts ...Option) (*Engine, error) {
	if eps <= 0 {
		return nil, ErrInvalidEpsilon
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{X: X, WsLog: wsLog, Y: Y, Kernel: k, Eps: eps, Pool: pool, Opts: o}, nil
}

// Run descends the pair (xRoot, yRoot), accumulating log-weight
// contributions into logWeights (indexed in query-tree permuted order,
// one slot per query point, pre-initialized to -Inf by the caller). The
// root call itself runs inline on the calling goroutine; Run returns only
// after every future it submitted along the way — and every future those
// futures themselves submitted — has been drained.
func (e *Engine) Run(xRoot *sourcetree.Node, yRoot *querytree.Node, logWeights []float64) error {
	st := &descentState{eng: e, logWeights: logWeights}
	st.doWork(xRoot, yRoot)

	return st.drainAll()
}

// descentState is the single-producer bookkeeping for one Run call: the
// list of outstanding futures submitted to the pool and the first error
// any of them reported. Every method that touches futures/firstErr runs
// on the same goroutine (the one that called Run). A forked finish-mode
// subtree runs on a pool worker with its own descentState, which never
// submits futures and records errors only in its own firstErr.
type descentState struct {
	eng        *Engine
	logWeights []float64
	finish     bool
	futures    []*workerpool.Future
	firstErr   error
}

// doWork descends one (X, Y) pair, choosing among prune / exact / fork /
// recurse per spec.md §4.5.
func (s *descentState) doWork(X *sourcetree.Node, Y *querytree.Node) {
	if !s.finish && len(s.futures) > s.eng.Opts.MaxFutures {
		s.throttle()
	}

	dMin2, dMax2, _ := X.Borders.MinMaxSqDist(Y.Borders)
	kMax := s.eng.Kernel.K(dMin2)
	kMin := s.eng.Kernel.K(dMax2)

	numerator := X.Weight * (kMax - kMin)
	denominator := (kMax+kMin)/2 + eta

	if numerator/denominator < 2*s.eng.Eps {
		// Rule A: prune. The whole X subtree is approximated by its
		// centroid for every query point under Y.
		s.dispatch(func() error { return s.compCentroid(X, Y) })
		return
	}

	if X.KD.Leaf && Y.KD.Leaf {
		// Rule B: exact leaf x leaf evaluation.
		s.dispatch(func() error { return s.compExact(X, Y) })
		return
	}

	if !s.finish && X.KD.Len() < s.eng.Opts.StopNElem && Y.KD.Len() < s.eng.Opts.StopNElem {
		// Rule C: both sides are small enough that recursing pair-by-pair
		// isn't worth the overhead; hand the rest of this subtree to the
		// pool as one sequential unit of work.
		child := &descentState{eng: s.eng, logWeights: s.logWeights, finish: true}
		future := s.eng.Pool.Submit(func() error {
			child.doWork(X, Y)
			return child.firstErr
		})
		s.futures = append(s.futures, future)
		return
	}

	// Rule D: recurse, splitting whichever side is not a leaf (or both
	// sides, descending all four child pairs, when neither is).
	switch {
	case X.KD.Leaf:
		s.doWork(X, Y.Left)
		s.doWork(X, Y.Right)
	case Y.KD.Leaf:
		s.doWork(X.Left, Y)
		s.doWork(X.Right, Y)
	default:
		s.doWork(X.Left, Y.Left)
		s.doWork(X.Left, Y.Right)
		s.doWork(X.Right, Y.Left)
		s.doWork(X.Right, Y.Right)
	}
}

// dispatch runs task inline when in finish mode (no tasks are submitted
// once a subtree has been forked to the pool — it finishes sequentially
// on the worker that picked it up), or submits it and tracks the future
// otherwise.
func (s *descentState) dispatch(task func() error) {
	if s.finish {
		if err := task(); err != nil && s.firstErr == nil {
			s.firstErr = err
		}
		return
	}

	s.futures = append(s.futures, s.eng.Pool.Submit(task))
}

// throttle blocks until at least MaxFuturesClear of the oldest
// outstanding futures have completed, bounding how many descent tasks can
// be in flight at once. This differs from the original implementation's
// non-blocking poll-and-skip loop, but preserves the same invariant (a
// bounded backlog of outstanding futures) with a simpler, fully
// deterministic drain.
func (s *descentState) throttle() {
	clear := s.eng.Opts.MaxFuturesClear
	if clear > len(s.futures) {
		clear = len(s.futures)
	}

	for i := 0; i < clear; i++ {
		if err := s.futures[i].Get(); err != nil && s.firstErr == nil {
			s.firstErr = err
		}
	}
	s.futures = s.futures[clear:]
}

// drainAll waits on every remaining outstanding future and returns the
// first error any task (including ones discovered during throttle drains)
// reported, after every future has been drained.
func (s *descentState) drainAll() error {
	for _, f := range s.futures {
		if err := f.Get(); err != nil && s.firstErr == nil {
			s.firstErr = err
		}
	}
	s.futures = nil

	return s.firstErr
}

// compCentroid accumulates X's centroid contribution into every query
// point under Y, recursing down to Y's leaves (rule A can fire for an
// internal Y node; the approximation is still evaluated once per query
// point, not once per Y node).
func (s *descentState) compCentroid(X *sourcetree.Node, Y *querytree.Node) error {
	if !Y.KD.Leaf {
		if err := s.compCentroid(X, Y.Left); err != nil {
			return err
		}
		return s.compCentroid(X, Y.Right)
	}

	xWeightLog := math.Log(X.Weight)
	single := s.eng.Pool.ThreadCount() < 2

	if single {
		for col := Y.KD.Start; col < Y.KD.End; col++ {
			yp, err := s.eng.Y.Col(col)
			if err != nil {
				return err
			}
			term := s.eng.Kernel.LogK(squaredDistance(X.Centroid, yp)) + xWeightLog
			s.logWeights[col] = kernel.PairwiseLogSumExp(s.logWeights[col], term)
		}
		return nil
	}

	scratch := make([]float64, Y.KD.Len())
	for i, col := 0, Y.KD.Start; col < Y.KD.End; i, col = i+1, col+1 {
		yp, err := s.eng.Y.Col(col)
		if err != nil {
			return err
		}
		scratch[i] = s.eng.Kernel.LogK(squaredDistance(X.Centroid, yp)) + xWeightLog
	}

	Y.Mutex.Lock()
	for i, col := 0, Y.KD.Start; col < Y.KD.End; i, col = i+1, col+1 {
		s.logWeights[col] = kernel.PairwiseLogSumExp(s.logWeights[col], scratch[i])
	}
	Y.Mutex.Unlock()

	return nil
}

// compExact evaluates every (source point, query point) pair under the
// leaf pair (X, Y) exactly, no approximation.
func (s *descentState) compExact(X *sourcetree.Node, Y *querytree.Node) error {
	single := s.eng.Pool.ThreadCount() < 2

	if single {
		for col := Y.KD.Start; col < Y.KD.End; col++ {
			yp, err := s.eng.Y.Col(col)
			if err != nil {
				return err
			}
			acc := s.logWeights[col]
			for xc := X.KD.Start; xc < X.KD.End; xc++ {
				xp, err := s.eng.X.Col(xc)
				if err != nil {
					return err
				}
				term := s.eng.Kernel.LogK(squaredDistance(xp, yp)) + s.eng.WsLog[xc]
				acc = kernel.PairwiseLogSumExp(acc, term)
			}
			s.logWeights[col] = acc
		}
		return nil
	}

	scratch := make([]float64, Y.KD.Len())
	for i, col := 0, Y.KD.Start; col < Y.KD.End; i, col = i+1, col+1 {
		yp, err := s.eng.Y.Col(col)
		if err != nil {
			return err
		}
		acc := math.Inf(-1)
		for xc := X.KD.Start; xc < X.KD.End; xc++ {
			xp, err := s.eng.X.Col(xc)
			if err != nil {
				return err
			}
			term := s.eng.Kernel.LogK(squaredDistance(xp, yp)) + s.eng.WsLog[xc]
			acc = kernel.PairwiseLogSumExp(acc, term)
		}
		scratch[i] = acc
	}

	Y.Mutex.Lock()
	for i, col := 0, Y.KD.Start; col < Y.KD.End; i, col = i+1, col+1 {
		s.logWeights[col] = kernel.PairwiseLogSumExp(s.logWeights[col], scratch[i])
	}
	Y.Mutex.Unlock()

	return nil
}

// squaredDistance returns the squared Euclidean distance between two
// points of equal length.
func squaredDistance(a, b []float64) float64 {
	var sum float64
	for k := range a {
		diff := a[k] - b[k]
		sum += diff * diff
	}
	return sum
}
