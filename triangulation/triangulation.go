package triangulation

// An incremental, dynamically updatable Delaunay triangulation of a planar
// point set, with an optional elevation payload per point. Insertion locates
// the containing cell, splits it (or extends the hull), then legalizes the
// new edges until the empty-circumcircle property holds again. The unbounded
// region outside the hull is tiled with half-plane sentinel cells so that
// every real edge always has two neighbors and the boundary needs no special
// cases.
//
// A single instance is not safe for concurrent mutation; callers needing
// shared access must serialize externally.

// Triangulation owns the vertex set, the cell arena, and the optional grid
// index.
type Triangulation struct {
	mesh     *mesh
	vertices map[vertexKey]Point

	// While every point seen so far is collinear there is no triangle at all,
	// only a chain of sentinel pairs threaded in comparator order between
	// firstP and lastP.
	allCollinear bool
	firstP       Point
	lastP        Point
	firstT       Face
	lastT        Face

	// start seeds point location; hullStart seeds the hull walk; current
	// seeds the changed-cells flood for the last mutation.
	start     Face
	hullStart Face
	current   Face

	bounds  Bounds
	version uint64
	index   *GridIndex

	// Lazily materialized cell list, recomputed only when version moves.
	cachedFaces   []Face
	cachedVersion uint64
	hasCache      bool
}

// New creates an empty triangulation.
func New() *Triangulation {
	return &Triangulation{
		mesh:         newMesh(),
		vertices:     make(map[vertexKey]Point),
		allCollinear: true,
		firstT:       NoFace,
		lastT:        NoFace,
		start:        NoFace,
		hullStart:    NoFace,
		current:      NoFace,
	}
}

// NewFromPoints creates a triangulation of all the points. Duplicates are
// ignored.
func NewFromPoints(points []Point) *Triangulation {
	d := New()
	for _, p := range points {
		d.Insert(p)
	}
	return d
}

// Size returns the number of distinct vertices.
func (d *Triangulation) Size() int {
	return len(d.vertices)
}

// TriangleCount returns the number of interior (non-sentinel) triangles.
func (d *Triangulation) TriangleCount() int {
	return d.mesh.interior
}

// Version returns the mutation counter. It advances on every insertion and
// deletion that changes the triangulation.
func (d *Triangulation) Version() uint64 {
	return d.version
}

// BoundingBox returns the accumulated bounding box of every point ever
// inserted. Deletion does not shrink it. ok is false while the triangulation
// is empty.
func (d *Triangulation) BoundingBox() (min, max Point, ok bool) {
	return d.bounds.MinMax()
}

// Insert adds p to the triangulation and restores the Delaunay property.
// Inserting a vertex that already exists is a no-op (the first insertion's
// elevation wins).
func (d *Triangulation) Insert(p Point) {
	if _, ok := d.vertices[keyOf(p)]; ok {
		return
	}
	d.version++
	d.bounds.Extend(p)
	d.vertices[keyOf(p)] = p

	t := d.insertPoint(p)
	if t == NoFace {
		return
	}
	d.current = t
	d.legalize(t)

	if d.index != nil {
		d.index.update(d.updatedFaces())
	}
}

// insertPoint places p in the mesh and returns the cell to start legalizing
// from, or NoFace when no legalization is needed (the collinear bootstrap
// phases).
func (d *Triangulation) insertPoint(p Point) Face {
	if !d.allCollinear {
		tf := d.locateFrom(d.start, p)
		if d.mesh.at(tf).kind == halfplaneCell {
			d.start = d.extendOutside(tf, p)
		} else {
			d.start = d.extendInside(tf, p)
		}
		return d.start
	}

	switch len(d.vertices) {
	case 1:
		d.firstP = p
		return NoFace
	case 2:
		d.startChain(d.firstP, p)
		return NoFace
	}

	switch o := Orient(d.firstP, d.lastP, p); o {
	case Left:
		d.start = d.extendOutside(d.mesh.at(d.firstT).ab, p)
		d.allCollinear = false
	case Right:
		d.start = d.extendOutside(d.firstT, p)
		d.allCollinear = false
	default:
		d.insertCollinear(p, o)
	}
	return NoFace
}

// extendInside splits the interior triangle t around p: t keeps two of its
// corners and adopts p as the third, and two new triangles fill in the rest.
// All three share p as their third corner, linked in a cycle through their ca
// edges; the legalization walk depends on that cycle.
func (d *Triangulation) extendInside(tf Face, p Point) Face {
	if h := d.degenerateInside(tf, p); h != NoFace {
		return h
	}

	m := d.mesh
	tA, tB, tC := m.at(tf).a, m.at(tf).b, m.at(tf).third()
	h1f := m.newTriangle(tC, tA, p)
	h2f := m.newTriangle(tB, tC, p)

	t := m.at(tf)
	t.setThird(p)
	h1 := m.at(h1f)
	h2 := m.at(h2f)
	h1.ab = t.ca
	h1.bc = tf
	h1.ca = h2f
	h2.ab = t.bc
	h2.bc = h1f
	h2.ca = tf
	m.at(h1.ab).switchNeighbors(tf, h1f)
	m.at(h2.ab).switchNeighbors(tf, h2f)
	t.bc = h2f
	t.ca = h1f
	return tf
}

// degenerateInside catches a point that location attributed to an interior
// triangle but that actually sits on one of its hull edges; such a point must
// go through the hull-edge split instead of a zero-area interior split.
func (d *Triangulation) degenerateInside(tf Face, p Point) Face {
	m := d.mesh
	t := m.at(tf)
	if m.at(t.ab).kind == halfplaneCell && Orient(t.b, t.a, p) == OnSegment {
		return d.extendOutside(t.ab, p)
	}
	if m.at(t.bc).kind == halfplaneCell && Orient(t.third(), t.b, p) == OnSegment {
		return d.extendOutside(t.bc, p)
	}
	if m.at(t.ca).kind == halfplaneCell && Orient(t.a, t.third(), p) == OnSegment {
		return d.extendOutside(t.ca, p)
	}
	return NoFace
}

// extendOutside inserts p outside the hull, at the sentinel t. If p lies
// exactly on t's hull edge the edge is split in place. Otherwise the hull is
// walked in both rotational directions from t, promoting every sentinel whose
// edge is visible from p into an interior triangle, and capping the walk ends
// with two fresh sentinels.
func (d *Triangulation) extendOutside(tf Face, p Point) Face {
	m := d.mesh
	if t := m.at(tf); Orient(t.a, t.b, p) == OnSegment {
		// p splits the hull edge a→b. The transient interior cell (a, b, p) is
		// collinear and has zero area; the legalization flip with the interior
		// neighbor across a→b immediately restructures it away, because a point
		// interior to a chord is strictly inside the circumcircle.
		tA, tB := t.a, t.b
		dgf := m.newTriangle(tA, tB, p)
		hpf := m.newHalfplane(p, tB)

		t = m.at(tf)
		t.setB(p)
		dg := m.at(dgf)
		hp := m.at(hpf)
		dg.ab = t.ab
		m.at(dg.ab).switchNeighbors(tf, dgf)
		dg.bc = hpf
		hp.ab = dgf
		dg.ca = tf
		t.ab = dgf
		hp.bc = t.bc
		m.at(hp.bc).ca = hpf
		hp.ca = tf
		t.bc = hpf
		return dgf
	}

	ccT := d.extendCounterclock(tf, p)
	cT := d.extendClock(tf, p)
	m.at(ccT).bc = cT
	m.at(cT).ca = ccT
	d.hullStart = cT
	return m.at(cT).ab
}

// extendCounterclock promotes sentinels counter-clockwise along the hull
// while their edges remain visible from p, then caps the walk with a new
// sentinel for the fresh hull edge a→p.
func (d *Triangulation) extendCounterclock(tf Face, p Point) Face {
	m := d.mesh
	for {
		// The entry cell is shared with the clockwise walk and may already
		// have been promoted.
		if m.at(tf).kind == halfplaneCell {
			m.promote(tf, p)
		}
		t := m.at(tf)
		tcaf := t.ca
		tca := m.at(tcaf)
		if Orient(tca.a, tca.b, p) >= Right {
			tA := t.a
			nf := m.newHalfplane(tA, p)
			n := m.at(nf)
			n.ab = tf
			m.at(tf).ca = nf
			n.ca = tcaf
			m.at(tcaf).bc = nf
			return nf
		}
		tf = tcaf
	}
}

// extendClock is the clockwise mirror of extendCounterclock; its cap covers
// the fresh hull edge p→b.
func (d *Triangulation) extendClock(tf Face, p Point) Face {
	m := d.mesh
	for {
		if m.at(tf).kind == halfplaneCell {
			m.promote(tf, p)
		}
		t := m.at(tf)
		tbcf := t.bc
		tbc := m.at(tbcf)
		if Orient(tbc.a, tbc.b, p) >= Right {
			tB := t.b
			nf := m.newHalfplane(p, tB)
			n := m.at(nf)
			n.ab = tf
			m.at(tf).bc = nf
			n.bc = tbcf
			m.at(tbcf).ca = nf
			return nf
		}
		tf = tbcf
	}
}

// Locate finds the cell containing p: an interior triangle if p is inside
// the hull, the bounding half-plane sentinel if it is outside. Location of
// an outside point is a defined result, not a failure. With fewer than two
// vertices there is no mesh and the returned view is not Valid.
func (d *Triangulation) Locate(p Point) Triangle {
	f := d.start
	if f == NoFace {
		f = d.firstT
	}
	if f == NoFace {
		return Triangle{}
	}
	if d.index != nil {
		if g := d.index.lookup(p); g != NoFace {
			f = g
		}
	}
	return Triangle{d, d.locateFrom(f, p)}
}

// locateFrom walks from a seed cell toward p: while p is strictly right of
// one of the current triangle's edges, cross into that edge's neighbor.
// Reaching a sentinel means p is outside the hull. Each step moves strictly
// toward the target, so the expected cost is sublinear in the vertex count.
func (d *Triangulation) locateFrom(f Face, p Point) Face {
	m := d.mesh
	if m.at(f).kind == halfplaneCell {
		nf := d.interiorNeighbor(f)
		if nf == NoFace || m.at(nf).kind == halfplaneCell {
			return f
		}
		f = nf
	}
	for {
		nf := d.stepToward(f, p)
		if nf == NoFace {
			return f
		}
		if m.at(nf).kind == halfplaneCell {
			return nf
		}
		f = nf
	}
}

// stepToward picks the neighbor to cross into, preferring interior neighbors
// so the walk only exits the hull when p really is outside.
func (d *Triangulation) stepToward(f Face, p Point) Face {
	m := d.mesh
	cl := m.at(f)
	a, b, c := cl.a, cl.b, cl.third()
	if Orient(a, b, p) == Right && m.at(cl.ab).kind != halfplaneCell {
		return cl.ab
	}
	if Orient(b, c, p) == Right && m.at(cl.bc).kind != halfplaneCell {
		return cl.bc
	}
	if Orient(c, a, p) == Right && m.at(cl.ca).kind != halfplaneCell {
		return cl.ca
	}
	if Orient(a, b, p) == Right {
		return cl.ab
	}
	if Orient(b, c, p) == Right {
		return cl.bc
	}
	if Orient(c, a, p) == Right {
		return cl.ca
	}
	return NoFace
}

// interiorNeighbor returns any non-sentinel neighbor of a sentinel, or
// NoFace when the whole mesh is still a collinear chain.
func (d *Triangulation) interiorNeighbor(f Face) Face {
	m := d.mesh
	cl := m.at(f)
	for _, nf := range []Face{cl.ab, cl.bc, cl.ca} {
		if nf != NoFace && m.at(nf).kind != halfplaneCell {
			return nf
		}
	}
	return NoFace
}

// Contains reports whether p falls inside the triangulation's convex hull.
func (d *Triangulation) Contains(p Point) bool {
	t := d.Locate(p)
	return t.Valid() && !t.IsHalfplane()
}

// ElevationAt interpolates the elevation payload at p from the plane of the
// containing triangle. It fails with ErrNotEnoughPoints while no real
// triangulation exists, and with ErrOutsideHull for points beyond the hull.
func (d *Triangulation) ElevationAt(p Point) (float64, error) {
	if d.allCollinear {
		return 0, ErrNotEnoughPoints
	}
	if v, ok := d.vertices[keyOf(p)]; ok {
		return v.Z, nil
	}
	t := d.Locate(p)
	if !t.Valid() || t.IsHalfplane() {
		return 0, ErrOutsideHull
	}
	return t.cell().planeZ(p), nil
}

// FindClosePoint returns the corner of the containing cell nearest to p,
// the vertex a caller should snap to when it wants to operate "at" p.
func (d *Triangulation) FindClosePoint(p Point) (Point, error) {
	t := d.Locate(p)
	if !t.Valid() {
		return Point{}, ErrVertexNotFound
	}
	var best Point
	bestD := -1.0
	for _, q := range t.Points() {
		if dd := q.DistanceSq(p); bestD < 0 || dd < bestD {
			best, bestD = q, dd
		}
	}
	return best, nil
}

// neighborhood collects the ordered ring of cells incident to vertex p,
// starting at a cell that has p as a corner. Returns nil if the walk runs
// into a sentinel, which means p is on the hull and has no closed fan.
func (d *Triangulation) neighborhood(start Face, p Point) []Face {
	fan := []Face{start}
	prev := NoFace
	cur := start
	next := d.nextAround(cur, p, prev)
	for next != start {
		if d.mesh.at(next).kind == halfplaneCell {
			return nil
		}
		fan = append(fan, next)
		prev, cur = cur, next
		next = d.nextAround(cur, p, prev)
	}
	return fan
}

// nextAround steps to the next cell around vertex p, walking a consistent
// rotational side and falling back to the other incident edge when the
// preferred one leads back where we came from.
func (d *Triangulation) nextAround(f Face, p Point, prev Face) Face {
	cl := d.mesh.at(f)
	var primary, fallback Face
	switch {
	case cl.a.EqualXY(p):
		primary, fallback = cl.ca, cl.ab
	case cl.b.EqualXY(p):
		primary, fallback = cl.ab, cl.bc
	case cl.kind == interiorCell && cl.c.EqualXY(p):
		primary, fallback = cl.bc, cl.ca
	default:
		fatalf("fan walk from a cell that does not touch %v", p)
	}
	if primary == prev {
		return fallback
	}
	return primary
}

// updatedFaces returns the interior cells stamped by the most recent
// mutation, flooding outward from the remembered current cell.
func (d *Triangulation) updatedFaces() []Face {
	if d.current == NoFace || d.mesh.count() <= 1 {
		return nil
	}
	m := d.mesh
	if !m.at(d.current).alive || m.at(d.current).touched != d.version {
		return nil
	}
	var out []Face
	seen := map[Face]struct{}{}
	stack := []Face{d.current}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		cl := m.at(f)
		if !cl.alive || cl.touched != d.version {
			continue
		}
		out = append(out, f)
		for _, nf := range []Face{cl.ab, cl.bc, cl.ca} {
			if nf != NoFace {
				stack = append(stack, nf)
			}
		}
	}
	return out
}

// materializeFaces floods the whole mesh from the start cell, caching the
// result until the mutation counter advances.
func (d *Triangulation) materializeFaces() []Face {
	if d.hasCache && d.cachedVersion == d.version {
		return d.cachedFaces
	}
	var out []Face
	root := d.start
	if root == NoFace {
		root = d.firstT
	}
	if root != NoFace {
		m := d.mesh
		seen := map[Face]struct{}{}
		stack := []Face{root}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
			cl := m.at(f)
			for _, nf := range []Face{cl.ab, cl.bc, cl.ca} {
				if nf != NoFace {
					stack = append(stack, nf)
				}
			}
		}
	}
	d.cachedFaces = out
	d.cachedVersion = d.version
	d.hasCache = true
	return out
}

// BuildIndex attaches a grid index with the given cell counts, replacing any
// existing one. The index only accelerates location; results never change.
func (d *Triangulation) BuildIndex(cols, rows int) {
	d.index = newGridIndex(d, cols, rows)
}

// DropIndex removes the grid index.
func (d *Triangulation) DropIndex() {
	d.index = nil
}
