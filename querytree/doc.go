// Package querytree decorates a kdtree.Tree over the query cloud Y with
// the tight bounding box the dual-tree engine's pruning predicate needs,
// plus a per-leaf mutex guarding concurrent accumulation into the shared
// log-weights vector.
//
// Decoration is bottom-up, the same as sourcetree: a node's Borders is
// computed from its children (or its own points at a leaf) before the
// node is returned.
package querytree
