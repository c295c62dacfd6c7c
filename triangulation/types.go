package triangulation

import (
	"fmt"
	"math"
)

// Epsilon is the slack used by tolerance-based float comparisons in tests and
// in the Delaunay property checks. Topological decisions (orientation,
// circumcircle membership) deliberately use exact IEEE sign tests instead:
// mixing a tolerance into those can make the predicate disagree with itself
// between calls, which is worse than an occasional misclassification on
// nearly degenerate input.
const Epsilon = 1e-9

// Point is an immutable planar point with an optional elevation payload.
// Identity is the (X, Y) pair only: two points at the same location are the
// same vertex no matter what Z they carry.
type Point struct {
	X, Y, Z float64
}

func At(x, y float64) Point {
	return Point{X: x, Y: y}
}

func At3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// EqualXY reports vertex identity. Exact comparison, matching the identity
// used by the vertex set.
func (p Point) EqualXY(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less orders points by X, then Y. This is the total order the collinear
// chain is threaded by, so it must agree with EqualXY: !Less either way
// implies the same vertex.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) Greater(q Point) bool {
	return q.Less(p)
}

// DistanceSq is the squared planar distance, ignoring Z.
func (p Point) DistanceSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

func (p Point) String() string {
	if p.Z != 0 {
		return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// vertexKey is the map key for the vertex set. Z is excluded on purpose.
type vertexKey struct {
	x, y float64
}

func keyOf(p Point) vertexKey {
	return vertexKey{p.X, p.Y}
}

// Bounds accumulates the bounding box of every point ever inserted. It is a
// pure fold: points themselves are never mutated, and deletion does not
// shrink the box.
type Bounds struct {
	min, max Point
	valid    bool
}

func (b *Bounds) Extend(p Point) {
	if !b.valid {
		b.min = p
		b.max = p
		b.valid = true
		return
	}
	b.min.X = math.Min(b.min.X, p.X)
	b.min.Y = math.Min(b.min.Y, p.Y)
	b.min.Z = math.Min(b.min.Z, p.Z)
	b.max.X = math.Max(b.max.X, p.X)
	b.max.Y = math.Max(b.max.Y, p.Y)
	b.max.Z = math.Max(b.max.Z, p.Z)
}

func (b *Bounds) MinMax() (min, max Point, ok bool) {
	return b.min, b.max, b.valid
}
