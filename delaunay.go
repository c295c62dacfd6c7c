// Package delaunay maintains an incremental Delaunay triangulation.
//
// The triangulation covers a planar point set under
// point insertion and deletion, and answers point location, containment,
// elevation interpolation, convex hull, and Voronoi cell queries against it.
// Points may carry an elevation, which makes the triangulation usable as a
// dynamic TIN terrain model.
package delaunay

import "github.com/osuushi/delaunay/triangulation"

type Point = triangulation.Point
type Triangle = triangulation.Triangle
type Triangulation = triangulation.Triangulation

// The structural errors mutations and queries can return.
var (
	ErrVertexNotFound  = triangulation.ErrVertexNotFound
	ErrHullVertex      = triangulation.ErrHullVertex
	ErrNotEnoughPoints = triangulation.ErrNotEnoughPoints
	ErrOutsideHull     = triangulation.ErrOutsideHull
)

// At makes a point at (x, y) with zero elevation.
func At(x, y float64) Point { return triangulation.At(x, y) }

// At3 makes a point at (x, y) with elevation z.
func At3(x, y, z float64) Point { return triangulation.At3(x, y, z) }

// New builds a triangulation of the given points. Duplicated points are
// ignored. More points can be inserted (and deleted) afterwards.
func New(points ...Point) *Triangulation {
	return triangulation.NewFromPoints(points)
}
