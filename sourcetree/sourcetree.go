package sourcetree

import (
	"github.com/katalvlaran/fska/geometry"
	"github.com/katalvlaran/fska/kdtree"
	"github.com/katalvlaran/fska/pointset"
)

// Node decorates a kdtree.Node with the quantities the dual-tree engine's
// pruning predicate reads: Weight (the sum of point weights under this
// node), Centroid (the weight-average point position under this node),
// and Borders (the tight bounding box of the points under this node).
type Node struct {
	KD          *kdtree.Node
	Left, Right *Node
	Weight      float64
	Centroid    []float64
	Borders     geometry.HyperRectangle
}

// Build decorates tree over points with per-node weight/centroid/borders,
// reading point weights from ws (in the same permuted order as points and
// tree). Returns ErrLengthMismatch if len(ws) != tree.N.
// Complexity: O(n) — every point is visited exactly once, plus O(n) extra
// work across all levels for box unions, since each union is O(d).
func Build(tree *kdtree.Tree, points *pointset.Matrix, ws []float64) (*Node, error) {
	if len(ws) != tree.N {
		return nil, ErrLengthMismatch
	}

	node, err := buildNode(tree.Root, points, ws)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func buildNode(kd *kdtree.Node, points *pointset.Matrix, ws []float64) (*Node, error) {
	if kd.Leaf {
		return buildLeaf(kd, points, ws)
	}

	left, err := buildNode(kd.Left, points, ws)
	if err != nil {
		return nil, err
	}
	right, err := buildNode(kd.Right, points, ws)
	if err != nil {
		return nil, err
	}

	borders, err := geometry.Union(left.Borders, right.Borders)
	if err != nil {
		return nil, err
	}

	weight := left.Weight + right.Weight
	centroid := weightedAverage(left.Centroid, left.Weight, right.Centroid, right.Weight, weight)

	return &Node{KD: kd, Left: left, Right: right, Weight: weight, Centroid: centroid, Borders: borders}, nil
}

func buildLeaf(kd *kdtree.Node, points *pointset.Matrix, ws []float64) (*Node, error) {
	d := points.Rows()
	weight := 0.0
	centroid := make([]float64, d)
	pts := make([][]float64, 0, kd.Len())

	for col := kd.Start; col < kd.End; col++ {
		w := ws[col]
		point, err := points.Col(col)
		if err != nil {
			return nil, err
		}
		pts = append(pts, point)
		weight += w
		for k := 0; k < d; k++ {
			centroid[k] += w * point[k]
		}
	}

	if weight > 0 {
		for k := range centroid {
			centroid[k] /= weight
		}
	} else {
		// Every point in this leaf has zero weight: the node contributes
		// nothing to any query (log(0) = -Inf absorbs it), so the
		// centroid's value is unobservable. Fall back to the arithmetic
		// mean to avoid a 0/0 division.
		for _, point := range pts {
			for k := 0; k < d; k++ {
				centroid[k] += point[k]
			}
		}
		for k := range centroid {
			centroid[k] /= float64(len(pts))
		}
	}

	borders, err := geometry.FromPoints(pts)
	if err != nil {
		return nil, err
	}

	return &Node{KD: kd, Weight: weight, Centroid: centroid, Borders: borders}, nil
}

// weightedAverage returns the weight-average of two centroids. If the
// combined weight is zero, it falls back to the unweighted mean so the
// result stays finite (the weight-zero node contributes nothing anyway).
func weightedAverage(c1 []float64, w1 float64, c2 []float64, w2 float64, total float64) []float64 {
	d := len(c1)
	out := make([]float64, d)
	if total > 0 {
		for k := 0; k < d; k++ {
			out[k] = (w1*c1[k] + w2*c2[k]) / total
		}
		return out
	}

	for k := 0; k < d; k++ {
		out[k] = (c1[k] + c2[k]) / 2
	}

	return out
}
