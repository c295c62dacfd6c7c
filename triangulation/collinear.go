package triangulation

// While every inserted point is collinear there is nothing to triangulate.
// The degenerate mesh is a chain of sentinel pairs along the shared line, one
// pair per segment between comparator-adjacent points, each pair covering the
// two half-planes on either side. The chain keeps point location and hull
// iteration working, and the first off-line point converts it into a real
// triangulation through the ordinary hull-extension path.

// startChain builds the two-sentinel chain for the first segment. The
// comparator-smaller endpoint becomes firstP so that later collinear
// insertions know which end of the chain they extend.
func (d *Triangulation) startChain(p1, p2 Point) {
	ps, pb := p1, p2
	if pb.Less(ps) {
		ps, pb = pb, ps
	}
	m := d.mesh
	ftf := m.newHalfplane(pb, ps)
	tf := m.newHalfplane(ps, pb)
	ft := m.at(ftf)
	t := m.at(tf)
	ft.ab = tf
	t.ab = ftf
	ft.bc = tf
	t.ca = ftf
	ft.ca = tf
	t.bc = ftf
	d.firstT = ftf
	d.lastT = ftf
	d.firstP = ps
	d.lastP = pb
	d.hullStart = ftf
}

// insertCollinear grows the chain with another point on the same line. The
// three cases are where p lands relative to the chain's span: before firstP,
// after lastP, or between two existing chain points.
func (d *Triangulation) insertCollinear(p Point, o Orientation) {
	m := d.mesh
	switch o {
	case InFrontOfA:
		fp := d.firstP
		tf := m.newHalfplane(fp, p)
		tpf := m.newHalfplane(p, fp)
		t := m.at(tf)
		tp := m.at(tpf)
		t.ab = tpf
		tp.ab = tf
		t.bc = tpf
		tp.ca = tf
		t.ca = d.firstT
		m.at(d.firstT).bc = tf
		tp.bc = m.at(d.firstT).ab
		m.at(m.at(d.firstT).ab).ca = tpf
		d.firstT = tf
		d.firstP = p

	case BehindB:
		lp := d.lastP
		tf := m.newHalfplane(p, lp)
		tpf := m.newHalfplane(lp, p)
		t := m.at(tf)
		tp := m.at(tpf)
		t.ab = tpf
		tp.ab = tf
		t.bc = d.lastT
		m.at(d.lastT).ca = tf
		t.ca = tpf
		tp.bc = tf
		tp.ca = m.at(d.lastT).ab
		m.at(m.at(d.lastT).ab).bc = tpf
		d.lastT = tf
		d.lastP = p

	case OnSegment:
		// Walk to the chain segment whose origin is the last point below p,
		// then split that segment and its mirror in place.
		uf := d.firstT
		for p.Greater(m.at(uf).a) {
			uf = m.at(uf).ca
		}
		ub := m.at(uf).b
		tf := m.newHalfplane(p, ub)
		tpf := m.newHalfplane(ub, p)
		u := m.at(uf)
		t := m.at(tf)
		tp := m.at(tpf)
		u.setB(p)
		m.at(u.ab).a = p
		t.ab = tpf
		tp.ab = tf
		t.bc = u.bc
		m.at(u.bc).ca = tf
		t.ca = uf
		u.bc = tf
		tp.ca = m.at(u.ab).ca
		m.at(m.at(u.ab).ca).bc = tpf
		tp.bc = u.ab
		m.at(u.ab).ca = tpf
		if d.firstT == uf {
			d.firstT = tf
		}

	default:
		fatalf("collinear insertion with non-collinear classification %v", o)
	}
}
