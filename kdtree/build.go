package kdtree

import (
	"sort"

	"github.com/katalvlaran/fska/pointset"
)

// Build constructs a balanced, median-split k-d tree over points, permuting
// points' columns in place so each leaf's range is contiguous.
//
// At each node, Build selects the axis of largest extent among the node's
// current points, sorts that range along the axis, and splits at the
// median position, recursing until a node holds at most nMin points.
// Splitting by position (rather than by value) keeps the two subtree sizes
// within 1 of each other even when many points share the split axis's
// coordinate.
//
// Build returns the tree, the permutation applied (order[pos] = original
// column index now at pos), and its inverse (inverse[originalIndex] =
// pos) so callers can un-permute results back into the caller's column
// order. Returns ErrEmptyInput if points has zero columns, ErrInvalidNMin
// if nMin < 1.
// Complexity: O(n log²n) — each of O(log n) levels sorts its own range.
func Build(points *pointset.Matrix, nMin int) (tree *Tree, order []int, inverse []int, err error) {
	if nMin < 1 {
		return nil, nil, nil, ErrInvalidNMin
	}
	n := points.Cols()
	if n == 0 {
		return nil, nil, nil, ErrEmptyInput
	}

	order = make([]int, n)
	for i := range order {
		order[i] = i
	}

	root := buildRange(points, order, 0, n, nMin)

	inverse = make([]int, n)
	for pos, orig := range order {
		inverse[orig] = pos
	}

	return &Tree{Root: root, NMin: nMin, N: n}, order, inverse, nil
}

// buildRange recursively builds the subtree covering permuted positions
// [start, end), mutating points and order in place.
func buildRange(points *pointset.Matrix, order []int, start, end, nMin int) *Node {
	size := end - start
	if size <= nMin {
		return &Node{Start: start, End: end, Leaf: true}
	}

	axis := widestAxis(points, start, end)
	sortByAxis(points, order, start, end, axis)

	// Left gets the ceiling half so subtree sizes never differ by more
	// than 1, regardless of how ties cluster at the boundary.
	mid := start + (size+1)/2
	split, err := points.At(axis, mid)
	if err != nil {
		// mid is always a valid column within [start, end) because
		// start < mid < end for size > nMin >= 1; a failure here would
		// indicate a bug in the range bookkeeping above, not bad input.
		panic(err)
	}

	return &Node{
		Start: start,
		End:   end,
		Axis:  axis,
		Split: split,
		Left:  buildRange(points, order, start, mid, nMin),
		Right: buildRange(points, order, mid, end, nMin),
	}
}

// widestAxis returns the dimension with the largest coordinate extent
// among points[*, start:end].
// Complexity: O(d * (end-start)).
func widestAxis(points *pointset.Matrix, start, end int) int {
	d := points.Rows()
	best, bestExtent := 0, -1.0
	for axis := 0; axis < d; axis++ {
		lo, _ := points.At(axis, start)
		hi := lo
		for col := start + 1; col < end; col++ {
			v, _ := points.At(axis, col)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if extent := hi - lo; extent > bestExtent {
			best, bestExtent = axis, extent
		}
	}

	return best
}

// axisRange adapts a [start, end) window of points, sorted by a single
// axis, to sort.Interface; Swap keeps the matrix columns and the
// permutation array in lockstep.
type axisRange struct {
	points     *pointset.Matrix
	order      []int
	start, end int
	axis       int
}

func (r axisRange) Len() int { return r.end - r.start }

func (r axisRange) Less(i, j int) bool {
	vi, _ := r.points.At(r.axis, r.start+i)
	vj, _ := r.points.At(r.axis, r.start+j)
	return vi < vj
}

func (r axisRange) Swap(i, j int) {
	_ = r.points.SwapCols(r.start+i, r.start+j)
	r.order[r.start+i], r.order[r.start+j] = r.order[r.start+j], r.order[r.start+i]
}

// sortByAxis sorts points[*, start:end] (and order in lockstep) by their
// coordinate on axis.
// Complexity: O((end-start) * log(end-start)) comparisons.
func sortByAxis(points *pointset.Matrix, order []int, start, end, axis int) {
	sort.Sort(axisRange{points: points, order: order, start: start, end: end, axis: axis})
}
