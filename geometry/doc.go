// Package geometry implements the axis-aligned bounding boxes the
// dual-tree engine uses to bound the distance between a source node and a
// query node without visiting every point in either.
package geometry
