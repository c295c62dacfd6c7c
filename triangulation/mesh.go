package triangulation

// The mesh is an arena of cells addressed by stable integer handles. Neighbor
// "pointers" are handles into the arena, which sidesteps reference cycles in
// the cyclic adjacency structure and makes debugging dumps trivial (a handle
// is printable; a pointer cycle is not). Deleted slots go on a free list and
// are recycled by later allocations, so a handle stays valid for the lifetime
// of the cell it was issued for and the arena never shrinks under an
// iterator.

// Face is a stable handle to a mesh cell.
type Face int

// NoFace is the null handle. A consistent mesh never exposes it through
// neighbor links (the half-plane sentinels exist precisely so that every
// real edge has two neighbors), but it appears transiently during surgery.
const NoFace Face = -1

type cellKind uint8

const (
	// interiorCell is an ordinary counter-clockwise triangle.
	interiorCell cellKind = iota
	// halfplaneCell is a sentinel for the unbounded region outside one hull
	// edge. It has only two corners; the third is never populated and never
	// readable.
	halfplaneCell
)

type circle struct {
	center   Point
	radiusSq float64
}

// cell is one arena record: three corners (two for sentinels), one neighbor
// link per edge, a lazily cached circumscribed circle, and the version stamp
// of the last mutation that touched it.
type cell struct {
	kind       cellKind
	a, b, c    Point
	ab, bc, ca Face
	circum     circle
	hasCircum  bool
	touched    uint64
	alive      bool
}

// third returns the third corner. Reading it from a sentinel is always a bug
// in the caller, so it fails loudly rather than handing back a zero point.
func (cl *cell) third() Point {
	if cl.kind == halfplaneCell {
		fatalf("read of the third corner of a half-plane sentinel")
	}
	return cl.c
}

func (cl *cell) setB(p Point) {
	cl.b = p
	cl.hasCircum = false
}

func (cl *cell) setThird(p Point) {
	cl.c = p
	cl.hasCircum = false
}

func (cl *cell) isCorner(p Point) bool {
	if cl.a.EqualXY(p) || cl.b.EqualXY(p) {
		return true
	}
	return cl.kind == interiorCell && cl.c.EqualXY(p)
}

// circumcircle returns the cached circumscribed circle, computing it from the
// perpendicular-bisector intersection on first use after a corner change.
func (cl *cell) circumcircle() circle {
	if cl.hasCircum {
		return cl.circum
	}
	a, b, c := cl.a, cl.b, cl.third()
	u := ((a.X-b.X)*(a.X+b.X) + (a.Y-b.Y)*(a.Y+b.Y)) / 2.0
	v := ((b.X-c.X)*(b.X+c.X) + (b.Y-c.Y)*(b.Y+c.Y)) / 2.0
	den := (a.X-b.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-b.Y)
	center := Point{
		X: (u*(b.Y-c.Y) - v*(a.Y-b.Y)) / den,
		Y: (v*(a.X-b.X) - u*(b.X-c.X)) / den,
	}
	cl.circum = circle{center: center, radiusSq: center.DistanceSq(a)}
	cl.hasCircum = true
	return cl.circum
}

// circumContains reports whether p lies strictly inside the circumscribed
// circle. Strict: a point on the circle does not violate the Delaunay
// condition and must not trigger a flip.
func (cl *cell) circumContains(p Point) bool {
	cc := cl.circumcircle()
	return cc.radiusSq > cc.center.DistanceSq(p)
}

// switchNeighbors replaces every link to old with repl.
func (cl *cell) switchNeighbors(old, repl Face) {
	if cl.ab == old {
		cl.ab = repl
	}
	if cl.bc == old {
		cl.bc = repl
	}
	if cl.ca == old {
		cl.ca = repl
	}
}

// contains reports whether p lies inside the triangle, boundary included.
// Corners are CCW, so "inside" means left of every directed edge.
func (cl *cell) contains(p Point) bool {
	if cl.kind == halfplaneCell {
		return false
	}
	if cl.isCorner(p) {
		return true
	}
	o1 := Orient(cl.a, cl.b, p)
	o2 := Orient(cl.b, cl.third(), p)
	o3 := Orient(cl.third(), cl.a, p)
	if o1 == Left && o2 == Left && o3 == Left {
		return true
	}
	if o1 == OnSegment || o2 == OnSegment || o3 == OnSegment {
		return o1 != Right && o2 != Right && o3 != Right
	}
	return false
}

// containsExclusive is contains with the boundary counted as outside.
func (cl *cell) containsExclusive(p Point) bool {
	if cl.kind == halfplaneCell || cl.isCorner(p) {
		return false
	}
	return Orient(cl.a, cl.b, p) == Left &&
		Orient(cl.b, cl.third(), p) == Left &&
		Orient(cl.third(), cl.a, p) == Left
}

// planeZ evaluates the triangle's plane equation at (p.X, p.Y), interpolating
// the corner elevations.
func (cl *cell) planeZ(p Point) float64 {
	a, b, c := cl.a, cl.b, cl.third()
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	if nz == 0 {
		fatalf("plane interpolation on a degenerate triangle %v %v %v", a, b, c)
	}
	return a.Z - (nx*(p.X-a.X)+ny*(p.Y-a.Y))/nz
}

func (cl *cell) neighbor(e Edge) Face {
	switch e {
	case EdgeAB:
		return cl.ab
	case EdgeBC:
		return cl.bc
	case EdgeCA:
		return cl.ca
	}
	fatalf("invalid edge %d", e)
	return NoFace
}

// setNeighborAcross points the link for the undirected edge {u, v} at nf.
func (cl *cell) setNeighborAcross(u, v Point, nf Face) {
	switch {
	case matchEdge(cl.a, cl.b, u, v):
		cl.ab = nf
	case matchEdge(cl.b, cl.third(), u, v):
		cl.bc = nf
	case matchEdge(cl.third(), cl.a, u, v):
		cl.ca = nf
	default:
		fatalf("cell has no edge {%v, %v}", u, v)
	}
}

func matchEdge(a, b, u, v Point) bool {
	return (a.EqualXY(u) && b.EqualXY(v)) || (a.EqualXY(v) && b.EqualXY(u))
}

type mesh struct {
	cells     []cell
	free      []Face
	interior  int
	sentinels int
}

func newMesh() *mesh {
	return &mesh{}
}

// at resolves a handle. Callers must not hold the returned pointer across an
// allocation: the arena may grow and move.
func (m *mesh) at(f Face) *cell {
	if f == NoFace {
		fatalf("dereference of NoFace")
	}
	return &m.cells[f]
}

func (m *mesh) alloc() Face {
	if n := len(m.free); n > 0 {
		f := m.free[n-1]
		m.free = m.free[:n-1]
		m.cells[f] = cell{alive: true, ab: NoFace, bc: NoFace, ca: NoFace}
		return f
	}
	m.cells = append(m.cells, cell{alive: true, ab: NoFace, bc: NoFace, ca: NoFace})
	return Face(len(m.cells) - 1)
}

// newTriangle allocates an interior cell. The corners are stored
// counter-clockwise: clockwise input is swapped, collinear input (which the
// hull-edge insertion path constructs deliberately, as a transient sliver) is
// kept as given.
func (m *mesh) newTriangle(a, b, c Point) Face {
	f := m.alloc()
	cl := m.at(f)
	cl.kind = interiorCell
	if Orient(a, b, c) == Right {
		b, c = c, b
	}
	cl.a, cl.b, cl.c = a, b, c
	m.interior++
	return f
}

// newHalfplane allocates a sentinel for the hull edge a→b.
func (m *mesh) newHalfplane(a, b Point) Face {
	f := m.alloc()
	cl := m.at(f)
	cl.kind = halfplaneCell
	cl.a, cl.b = a, b
	m.sentinels++
	return f
}

// promote turns a sentinel into an interior triangle with third corner p.
// This is how hull extension absorbs the old boundary cells.
func (m *mesh) promote(f Face, p Point) {
	cl := m.at(f)
	if cl.kind != halfplaneCell {
		fatalf("promote of interior cell %d", f)
	}
	cl.kind = interiorCell
	cl.setThird(p)
	m.sentinels--
	m.interior++
}

func (m *mesh) release(f Face) {
	cl := m.at(f)
	if !cl.alive {
		fatalf("double release of cell %d", f)
	}
	if cl.kind == halfplaneCell {
		m.sentinels--
	} else {
		m.interior--
	}
	cl.alive = false
	m.free = append(m.free, f)
}

func (m *mesh) count() int {
	return m.interior + m.sentinels
}
