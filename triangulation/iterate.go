package triangulation

import "sort"

// Iterators are snapshots: each captures the state at creation time and is
// unaffected by later mutations. The triangle snapshot is shared through the
// version-keyed cache, so taking many iterators between mutations is cheap.

// VertexIterator walks the vertices in comparator order (x, then y).
type VertexIterator struct {
	points []Point
	i      int
}

// Vertices returns an iterator over all vertices, sorted.
func (d *Triangulation) Vertices() *VertexIterator {
	pts := make([]Point, 0, len(d.vertices))
	for _, p := range d.vertices {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return &VertexIterator{points: pts}
}

func (it *VertexIterator) Len() int { return len(it.points) }

func (it *VertexIterator) Next() (Point, bool) {
	if it.i >= len(it.points) {
		return Point{}, false
	}
	p := it.points[it.i]
	it.i++
	return p, true
}

func (it *VertexIterator) Reset() { it.i = 0 }

// TriangleIterator walks a snapshot of mesh cells, half-plane sentinels
// included. Callers that want only real triangles skip on IsHalfplane.
type TriangleIterator struct {
	d     *Triangulation
	faces []Face
	i     int
}

// Triangles returns an iterator over every cell in the mesh.
func (d *Triangulation) Triangles() *TriangleIterator {
	return &TriangleIterator{d: d, faces: d.materializeFaces()}
}

// Updated returns an iterator over the interior cells created or reshaped by
// the most recent mutation. A no-op insertion of a duplicate vertex is not a
// mutation and leaves the set alone.
func (d *Triangulation) Updated() *TriangleIterator {
	return &TriangleIterator{d: d, faces: d.updatedFaces()}
}

func (it *TriangleIterator) Len() int { return len(it.faces) }

func (it *TriangleIterator) Next() (Triangle, bool) {
	if it.i >= len(it.faces) {
		return Triangle{}, false
	}
	t := Triangle{it.d, it.faces[it.i]}
	it.i++
	return t, true
}

func (it *TriangleIterator) Reset() { it.i = 0 }

// HullIterator walks the convex hull vertices in boundary order by following
// the ring of half-plane sentinels. In the all-collinear chain both sides of
// the line carry sentinels, so interior chain points are deduplicated.
type HullIterator struct {
	points []Point
	i      int
}

// HullVertices returns an iterator over the convex hull vertices in boundary
// order. Empty while the triangulation has fewer than two vertices.
func (d *Triangulation) HullVertices() *HullIterator {
	start := d.hullSentinel()
	if start == NoFace {
		return &HullIterator{}
	}
	m := d.mesh
	var pts []Point
	seen := map[vertexKey]struct{}{}
	f := start
	for {
		cl := m.at(f)
		if _, dup := seen[keyOf(cl.a)]; !dup {
			seen[keyOf(cl.a)] = struct{}{}
			pts = append(pts, cl.a)
		}
		f = cl.bc
		if f == start {
			break
		}
	}
	return &HullIterator{points: pts}
}

// HullSize returns the number of vertices on the convex hull boundary.
func (d *Triangulation) HullSize() int {
	return d.HullVertices().Len()
}

// hullSentinel returns a live sentinel to start the hull walk from. The
// remembered one is normally still a sentinel; after unusual histories fall
// back to scanning the arena.
func (d *Triangulation) hullSentinel() Face {
	m := d.mesh
	if d.hullStart != NoFace {
		if cl := m.at(d.hullStart); cl.alive && cl.kind == halfplaneCell {
			return d.hullStart
		}
	}
	for i := range m.cells {
		if m.cells[i].alive && m.cells[i].kind == halfplaneCell {
			return Face(i)
		}
	}
	return NoFace
}

func (it *HullIterator) Len() int { return len(it.points) }

func (it *HullIterator) Next() (Point, bool) {
	if it.i >= len(it.points) {
		return Point{}, false
	}
	p := it.points[it.i]
	it.i++
	return p, true
}

func (it *HullIterator) Reset() { it.i = 0 }
