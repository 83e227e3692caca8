package querytree

import (
	"sync"

	"github.com/katalvlaran/fska/geometry"
	"github.com/katalvlaran/fska/kdtree"
	"github.com/katalvlaran/fska/pointset"
)

// Node decorates a kdtree.Node with Borders (the tight bounding box of the
// points under this node). Leaves additionally carry a Mutex guarding
// writes to the shared log-weights accumulator for this leaf's index
// range: distinct leaves own disjoint ranges, so the only contention a
// leaf's mutex ever sees is from concurrent workers finishing the same
// leaf by coincidence.
type Node struct {
	KD          *kdtree.Node
	Left, Right *Node
	Borders     geometry.HyperRectangle
	Mutex       *sync.Mutex
}

// Build decorates tree over points with per-node bounding boxes and, at
// each leaf, a fresh mutex.
// Complexity: O(n).
func Build(tree *kdtree.Tree, points *pointset.Matrix) (*Node, error) {
	return buildNode(tree.Root, points)
}

func buildNode(kd *kdtree.Node, points *pointset.Matrix) (*Node, error) {
	if kd.Leaf {
		pts := make([][]float64, 0, kd.Len())
		for col := kd.Start; col < kd.End; col++ {
			p, err := points.Col(col)
			if err != nil {
				return nil, err
			}
			pts = append(pts, p)
		}
		borders, err := geometry.FromPoints(pts)
		if err != nil {
			return nil, err
		}

		return &Node{KD: kd, Borders: borders, Mutex: &sync.Mutex{}}, nil
	}

	left, err := buildNode(kd.Left, points)
	if err != nil {
		return nil, err
	}
	right, err := buildNode(kd.Right, points)
	if err != nil {
		return nil, err
	}

	borders, err := geometry.Union(left.Borders, right.Borders)
	if err != nil {
		return nil, err
	}

	return &Node{KD: kd, Left: left, Right: right, Borders: borders}, nil
}
