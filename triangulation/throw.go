package triangulation

import "github.com/pkg/errors"

// Structural failures a caller can provoke and should handle.
var (
	// ErrVertexNotFound is returned when an operation names a vertex that is
	// not part of the triangulation.
	ErrVertexNotFound = errors.New("delaunay: vertex not found")

	// ErrHullVertex is returned when deleting a vertex on the convex hull
	// boundary. The retriangulation needs a closed fan of interior triangles,
	// which a hull vertex does not have. Nothing is modified.
	ErrHullVertex = errors.New("delaunay: cannot delete a vertex on the convex hull")

	// ErrNotEnoughPoints is returned by queries that need a real triangulation
	// while everything inserted so far is collinear (or fewer than three
	// points exist). Retry after inserting more points.
	ErrNotEnoughPoints = errors.New("delaunay: not enough non-collinear points")

	// ErrOutsideHull is returned by interpolation queries for points outside
	// the convex hull. Point location itself never fails on such points; it
	// reports the bounding half-plane instead.
	ErrOutsideHull = errors.New("delaunay: point lies outside the convex hull")
)

// Threading errors through the mesh surgery would bloat every link-rewiring
// helper with returns that can only ever fire on a corrupted mesh. Instead,
// internal invariant violations panic with a typed error and the exported
// mutators recover it into their error result.

type invariantError error

// Panic with an invariantError.
func fatalf(format string, args ...interface{}) {
	panic(invariantError(errors.Errorf(format, args...)))
}

func recoverInvariant(r interface{}) error {
	if r != nil {
		if invErr, ok := r.(invariantError); ok {
			return invErr
		}
		panic(r)
	}
	return nil
}
