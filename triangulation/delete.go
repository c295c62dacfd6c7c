package triangulation

// Deletion removes an interior vertex by ear-clipping the polygon left
// behind. The fan of triangles around the vertex is collected, its outer ring
// of neighbor vertices is retriangulated ear by ear (each candidate ear must
// be empty of the doomed vertex and Delaunay against the remaining ring), and
// the new triangles are stitched to the fan's outer neighbors. Hull vertices
// have no closed fan and cannot be deleted this way.

type triSpec struct {
	a, b, c Point
}

type edgeKey struct {
	u, v vertexKey
}

// ek builds an undirected edge key.
func ek(a, b Point) edgeKey {
	ka, kb := keyOf(a), keyOf(b)
	if kb.x < ka.x || (kb.x == ka.x && kb.y < ka.y) {
		ka, kb = kb, ka
	}
	return edgeKey{ka, kb}
}

// Delete removes the vertex at p's coordinates and retriangulates the hole.
// It fails with ErrVertexNotFound if no such vertex exists and with
// ErrHullVertex if the vertex lies on the convex hull boundary (including the
// all-collinear chain, where every vertex is boundary). On error nothing is
// modified.
func (d *Triangulation) Delete(p Point) (err error) {
	defer func() {
		if e := recoverInvariant(recover()); e != nil {
			err = e
		}
	}()

	if _, ok := d.vertices[keyOf(p)]; !ok {
		return ErrVertexNotFound
	}
	t := d.Locate(p)
	if !t.Valid() {
		return ErrVertexNotFound
	}
	if t.IsHalfplane() {
		return ErrHullVertex
	}
	if !t.cell().isCorner(p) {
		return ErrVertexNotFound
	}

	fan := d.neighborhood(t.f, p)
	if fan == nil {
		return ErrHullVertex
	}

	m := d.mesh
	ring := make([]Point, 0, len(fan))
	seen := make(map[vertexKey]struct{}, len(fan))
	for _, ff := range fan {
		// The corner cyclically after p, so the ring follows the fan order.
		cl := m.at(ff)
		var q Point
		switch {
		case cl.a.EqualXY(p):
			q = cl.b
		case cl.b.EqualXY(p):
			q = cl.third()
		default:
			q = cl.a
		}
		if _, dup := seen[keyOf(q)]; !dup {
			seen[keyOf(q)] = struct{}{}
			ring = append(ring, q)
		}
	}

	specs := make([]triSpec, 0, len(ring)-2)
	for len(ring) > 3 {
		s := findEar(ring, p)
		specs = append(specs, s)
		ring = removeRingPoint(ring, findDiagonal(s, p))
	}
	specs = append(specs, triSpec{ring[0], ring[1], ring[2]})

	d.version++

	newFaces := make([]Face, len(specs))
	for i, s := range specs {
		newFaces[i] = m.newTriangle(s.a, s.b, s.c)
		m.at(newFaces[i]).touched = d.version
	}

	// Stitch: each fan triangle contributes its one edge not incident to p,
	// together with the neighbor beyond it. New cells claim those edges, and
	// pair up with each other on the interior diagonals.
	type outerLink struct {
		beyond, old Face
	}
	outer := make(map[edgeKey]outerLink, len(fan))
	for _, ff := range fan {
		cl := m.at(ff)
		var u, v Point
		var beyond Face
		switch {
		case cl.a.EqualXY(p):
			u, v, beyond = cl.b, cl.third(), cl.bc
		case cl.b.EqualXY(p):
			u, v, beyond = cl.third(), cl.a, cl.ca
		default:
			u, v, beyond = cl.a, cl.b, cl.ab
		}
		outer[ek(u, v)] = outerLink{beyond, ff}
	}

	pending := make(map[edgeKey]Face)
	for _, nf := range newFaces {
		cl := m.at(nf)
		edges := [3][2]Point{{cl.a, cl.b}, {cl.b, cl.c}, {cl.c, cl.a}}
		for _, e := range edges {
			k := ek(e[0], e[1])
			if ol, ok := outer[k]; ok {
				cl.setNeighborAcross(e[0], e[1], ol.beyond)
				m.at(ol.beyond).switchNeighbors(ol.old, nf)
				continue
			}
			if other, ok := pending[k]; ok {
				cl.setNeighborAcross(e[0], e[1], other)
				m.at(other).setNeighborAcross(e[0], e[1], nf)
			} else {
				pending[k] = nf
			}
		}
	}

	for _, ff := range fan {
		m.release(ff)
	}
	if d.start == NoFace || !m.at(d.start).alive {
		d.start = newFaces[0]
	}
	d.current = newFaces[0]
	delete(d.vertices, keyOf(p))

	if d.index != nil {
		d.index.update(newFaces)
	}
	return nil
}

// findEar scans consecutive ring triples for a strictly convex triangle that
// does not swallow the doomed vertex and keeps every other ring vertex
// outside its circumcircle. The first qualifying triple wins. Collinear
// triples are rejected outright: a zero-area ear has no circumcircle and must
// never reach the mesh. With exactly four ring vertices the doomed vertex may
// legitimately sit on a candidate's boundary, so the containment test relaxes
// to boundary-is-outside.
func findEar(ring []Point, p Point) triSpec {
	n := len(ring)
	for i := 0; i < n; i++ {
		j, k := i+1, i+2
		if j >= n {
			j, k = 0, 1
		} else if k >= n {
			k = 0
		}
		a, b, c := ring[i], ring[j], ring[k]
		if Orient(a, b, c) != Left {
			continue
		}
		probe := probeCell(a, b, c)
		if !probe.contains(p) && !anyInCircumcircle(&probe, ring) {
			return triSpec{a, b, c}
		}
		if n == 4 && !probe.containsExclusive(p) && !anyInCircumcircle(&probe, ring) {
			return triSpec{a, b, c}
		}
	}
	fatalf("retriangulation found no ear in a %d-vertex ring", n)
	return triSpec{}
}

// probeCell builds a detached CCW cell for geometric tests.
func probeCell(a, b, c Point) cell {
	if Orient(a, b, c) == Right {
		b, c = c, b
	}
	return cell{kind: interiorCell, a: a, b: b, c: c, alive: true}
}

func anyInCircumcircle(probe *cell, ring []Point) bool {
	for _, q := range ring {
		if probe.isCorner(q) {
			continue
		}
		if probe.circumContains(q) {
			return true
		}
	}
	return false
}

// findDiagonal picks the ear corner that closes off the ear from the doomed
// vertex: the corner q such that the segment p→q has the ear's other two
// corners on opposite sides.
func findDiagonal(s triSpec, p Point) Point {
	if Orient(p, s.c, s.a) == Left && Orient(p, s.c, s.b) == Right {
		return s.c
	}
	if Orient(p, s.b, s.c) == Left && Orient(p, s.b, s.a) == Right {
		return s.b
	}
	if Orient(p, s.a, s.b) == Left && Orient(p, s.a, s.c) == Right {
		return s.a
	}
	fatalf("ear %v %v %v has no diagonal corner for %v", s.a, s.b, s.c, p)
	return Point{}
}

func removeRingPoint(ring []Point, q Point) []Point {
	for i, r := range ring {
		if r.EqualXY(q) {
			return append(ring[:i], ring[i+1:]...)
		}
	}
	return ring
}
