// Package pointset provides the column-major point-cloud buffer shared by
// kdtree, sourcetree, querytree, engine, and fska.
//
// A Matrix holds d rows (dimensions) by n columns (points) of float64
// values, stored flat in column-major order so that a single point is a
// contiguous run of d values — the layout kd-tree construction wants when
// it permutes columns in place.
//
// Matrix is intentionally minimal: it is the "abstract column-major 2-D
// numeric buffer" spec.md treats as an external collaborator, not a
// general linear-algebra type. Callers needing matrix arithmetic should
// reach for a dedicated library; this package only offers the accessors
// tree construction and kernel evaluation need.
package pointset
