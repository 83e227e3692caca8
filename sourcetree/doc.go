// Package sourcetree decorates a kdtree.Tree over the source cloud X with
// the per-node quantities the dual-tree engine's pruning predicate needs:
// the total weight under the node, its weighted centroid, and its tight
// bounding box.
//
// Decoration is a strict bottom-up build: a node's weight, centroid, and
// borders are computed from its children (or directly from its points at
// a leaf) before the node itself is returned, so a parent never reads an
// uninitialized child.
package sourcetree
