package triangulation

// Legalization restores the empty-circumcircle property after an insertion.
// Every cell incident to the new point is checked against its neighbor across
// the edge opposite the point; when the neighbor's far corner invades the
// circumcircle, the shared edge flips. A flip creates new incident cells that
// must be checked in turn, so the whole thing runs off an explicit work-list
// rather than recursion. The list is bounded: a consistent mesh flips each
// edge at most once per insertion, so a hard cap on iterations turns a
// predicate inconsistency into a loud failure instead of a hang.

// legalize checks and repairs the fan around the point just inserted,
// starting from the cell that insertion returned. The cells incident to the
// new point form a ring linked through their ca edges.
func (d *Triangulation) legalize(start Face) {
	m := d.mesh
	var work []Face
	tt := start
	for {
		work = append(work, tt)
		tt = m.at(tt).ca
		if tt == start || m.at(tt).kind == halfplaneCell {
			break
		}
	}

	limit := 4*m.count() + 64
	for steps := 0; len(work) > 0; steps++ {
		if steps > limit {
			fatalf("legalization failed to converge after %d flips", steps)
		}
		f := work[len(work)-1]
		work = work[:len(work)-1]
		if !m.at(f).alive {
			continue
		}
		if vf, flipped := d.flipOnce(f); flipped {
			work = append(work, f, vf)
		}
	}
}

// flipOnce flips the edge between t and its ab neighbor if that neighbor's
// circumcircle contains t's third corner. Both cells keep their identity: t
// is rewritten in place, the neighbor is replaced by a fresh cell and
// released. Returns the fresh cell when a flip happened.
func (d *Triangulation) flipOnce(tf Face) (Face, bool) {
	m := d.mesh
	t := m.at(tf)
	t.touched = d.version
	uf := t.ab
	u := m.at(uf)
	if u.kind == halfplaneCell || !u.circumContains(t.third()) {
		return NoFace, false
	}

	// The shared edge is t's a→b; find which corner of u matches t.a to read
	// off u's far corner and the two u-side neighbor links. Everything is
	// captured before the allocation because growing the arena moves cells.
	var vA Point
	var vAB, tAB Face
	switch {
	case t.a.EqualXY(u.a):
		vA, vAB, tAB = u.b, u.bc, u.ab
	case t.a.EqualXY(u.b):
		vA, vAB, tAB = u.c, u.ca, u.bc
	case t.a.EqualXY(u.c):
		vA, vAB, tAB = u.a, u.ab, u.ca
	default:
		fatalf("flip across an edge the neighbor does not share")
	}
	tB, tC := t.b, t.third()

	vf := m.newTriangle(vA, tB, tC)
	t = m.at(tf)
	v := m.at(vf)
	v.touched = d.version
	v.ab = vAB
	t.ab = tAB
	v.bc = t.bc
	m.at(v.ab).switchNeighbors(uf, vf)
	m.at(v.bc).switchNeighbors(tf, vf)
	t.bc = vf
	v.ca = tf
	t.setB(vA)
	m.at(t.ab).switchNeighbors(uf, tf)
	m.release(uf)
	d.current = vf
	return vf, true
}
