package triangulation

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/delaunay/dbg"
)

// Edge names one of a triangle's three directed edges.
type Edge uint8

const (
	EdgeAB Edge = iota
	EdgeBC
	EdgeCA
)

// Triangle is a read-only view over one mesh cell. It stays valid as long as
// the cell is alive; holding a Triangle across later mutations of the
// triangulation may leave it pointing at a recycled cell.
type Triangle struct {
	d *Triangulation
	f Face
}

// Valid reports whether the view points at a cell at all. Location queries on
// a triangulation with fewer than two vertices return an invalid Triangle.
func (t Triangle) Valid() bool {
	return t.d != nil && t.f != NoFace
}

// IsHalfplane reports whether this cell is a sentinel for the unbounded
// region beyond one hull edge.
func (t Triangle) IsHalfplane() bool {
	return t.cell().kind == halfplaneCell
}

func (t Triangle) A() Point { return t.cell().a }
func (t Triangle) B() Point { return t.cell().b }

// C returns the third corner. Half-plane sentinels have no third corner and
// asking for one panics: it is a category error, not a recoverable state.
func (t Triangle) C() Point { return t.cell().third() }

// Points returns the corners: two for a sentinel, three otherwise.
func (t Triangle) Points() []Point {
	cl := t.cell()
	if cl.kind == halfplaneCell {
		return []Point{cl.a, cl.b}
	}
	return []Point{cl.a, cl.b, cl.c}
}

// Neighbor returns the cell across the given edge.
func (t Triangle) Neighbor(e Edge) Triangle {
	return Triangle{t.d, t.cell().neighbor(e)}
}

// Circumcircle returns the center and squared radius of the circumscribed
// circle. Only interior triangles have one.
func (t Triangle) Circumcircle() (center Point, radiusSq float64) {
	cc := t.cell().circumcircle()
	return cc.center, cc.radiusSq
}

// Contains reports whether p lies in this triangle, boundary included.
// Always false for sentinels.
func (t Triangle) Contains(p Point) bool {
	return t.cell().contains(p)
}

// IsCorner reports whether p is one of the corners.
func (t Triangle) IsCorner(p Point) bool {
	return t.cell().isCorner(p)
}

func (t Triangle) cell() *cell {
	if !t.Valid() {
		fatalf("use of invalid Triangle view")
	}
	return t.d.mesh.at(t.f)
}

func (t Triangle) String() string {
	if !t.Valid() {
		return "Triangle<none>"
	}
	cl := t.cell()
	if cl.kind == halfplaneCell {
		return fmt.Sprintf("Halfplane %s {%v → %v}", t.DbgName(), cl.a, cl.b)
	}
	return fmt.Sprintf("Triangle %s {%v, %v, %v}", t.DbgName(), cl.a, cl.b, cl.c)
}

// faceID keys dbg names by handle rather than cell pointer: the arena may
// move cells when it grows, but the handle is stable.
type faceID struct {
	d *Triangulation
	f Face
}

// DbgName gives the cell a stable readable name for debug output: sentinels
// cyan, interior triangles green.
func (t Triangle) DbgName() string {
	if !t.Valid() {
		return "Ø"
	}
	name := dbg.Name(faceID{t.d, t.f})
	if t.IsHalfplane() {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}
