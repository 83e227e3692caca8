package kdtree

// LeafLayout flattens tree's leaves in depth-first order, mapping each
// leaf's permuted positions back to original indices via order (as
// returned by Build). It returns the concatenated original indices and,
// in the same leaf order, each leaf's size — the secondary testing entry
// point spec.md §6 calls out, mirroring the original implementation's
// test_KD_note hook.
// Complexity: O(n).
func LeafLayout(tree *Tree, order []int) (indices []int, counts []int) {
	if tree == nil || tree.Root == nil {
		return nil, nil
	}

	indices = make([]int, 0, tree.N)
	collectLeaves(tree.Root, order, &indices, &counts)

	return indices, counts
}

func collectLeaves(n *Node, order []int, indices *[]int, counts *[]int) {
	if n.Leaf {
		*indices = append(*indices, order[n.Start:n.End]...)
		*counts = append(*counts, n.Len())
		return
	}

	collectLeaves(n.Left, order, indices, counts)
	collectLeaves(n.Right, order, indices, counts)
}
