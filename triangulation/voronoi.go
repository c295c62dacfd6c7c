package triangulation

import "math"

// voronoiReach caps the length of the unbounded Voronoi edges along the hull.
// The dual cell of a hull edge is an infinite strip; callers get a segment of
// its bisector this long instead.
const voronoiReach = 500.0

// VoronoiCell returns the Voronoi cell of vertex p, given any cell t incident
// to it. For an interior vertex the cell is the polygon of circumcenters of
// the triangle fan around p, in fan order. For a half-plane sentinel the dual
// degenerates to a piece of the hull edge's perpendicular bisector: the two
// returned points are the adjacent triangle's circumcenter and the outward
// end.
func (d *Triangulation) VoronoiCell(t Triangle, p Point) ([]Point, error) {
	if !t.Valid() {
		return nil, ErrVertexNotFound
	}
	if t.IsHalfplane() {
		return d.voronoiRay(t.f)
	}
	if !t.cell().isCorner(p) {
		return nil, ErrVertexNotFound
	}
	fan := d.neighborhood(t.f, p)
	if fan == nil {
		// p is on the hull; its cell is unbounded and has no circumcenter
		// polygon.
		return nil, ErrHullVertex
	}
	poly := make([]Point, len(fan))
	for i, f := range fan {
		poly[i] = d.mesh.at(f).circumcircle().center
	}
	return poly, nil
}

// voronoiRay builds the bisector segment for a hull edge: the true Voronoi
// edge between the edge's two endpoints is the ray from the adjacent
// triangle's circumcenter along the edge's perpendicular bisector, pointing
// away from the triangulation.
func (d *Triangulation) voronoiRay(f Face) ([]Point, error) {
	m := d.mesh
	nf := d.interiorNeighbor(f)
	if nf == NoFace {
		return nil, ErrNotEnoughPoints
	}
	hp := m.at(f)
	a, b := hp.a, hp.b

	// The neighbor's far corner tells us which side is inside.
	n := m.at(nf)
	var inner Point
	switch {
	case !n.a.EqualXY(a) && !n.a.EqualXY(b):
		inner = n.a
	case !n.b.EqualXY(a) && !n.b.EqualXY(b):
		inner = n.b
	default:
		inner = n.third()
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		fatalf("half-plane over a degenerate hull edge at %v", a)
	}
	ux, uy := -dy/length, dx/length
	// Probe from the edge midpoint: the circumcenter itself may already sit
	// on either side of the edge.
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	tip := Point{X: mid.X + ux, Y: mid.Y + uy}
	if Orient(a, b, tip) == Orient(a, b, inner) {
		ux, uy = -ux, -uy
	}
	start := m.at(nf).circumcircle().center
	end := Point{X: start.X + ux*voronoiReach, Y: start.Y + uy*voronoiReach}
	return []Point{start, end}, nil
}
