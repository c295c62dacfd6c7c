package triangulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHasPoint(t *testing.T, poly []Point, q Point) {
	t.Helper()
	for _, p := range poly {
		if math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon {
			return
		}
	}
	t.Errorf("polygon %v is missing %v", poly, q)
}

func TestVoronoiCellOfInteriorVertex(t *testing.T) {
	center := At(5, 5)
	d := NewFromPoints(append(squarePoints(), center))

	tri := d.Locate(center)
	require.True(t, tri.IsCorner(center))

	poly, err := d.VoronoiCell(tri, center)
	require.NoError(t, err)
	require.Len(t, poly, 4)

	// The dual of the center is the diamond of the four circumcenters.
	assertHasPoint(t, poly, At(5, 0))
	assertHasPoint(t, poly, At(10, 5))
	assertHasPoint(t, poly, At(5, 10))
	assertHasPoint(t, poly, At(0, 5))
}

func TestVoronoiCellOfHullVertex(t *testing.T) {
	d := NewFromPoints(append(squarePoints(), At(5, 5)))
	corner := At(0, 0)
	tri := d.Locate(corner)
	require.True(t, tri.IsCorner(corner))
	if tri.IsHalfplane() {
		// Force an interior cell so the fan walk is what fails, not the
		// entry check.
		it := d.Triangles()
		for cand, more := it.Next(); more; cand, more = it.Next() {
			if !cand.IsHalfplane() && cand.IsCorner(corner) {
				tri = cand
				break
			}
		}
	}

	_, err := d.VoronoiCell(tri, corner)
	assert.ErrorIs(t, err, ErrHullVertex)
}

func TestVoronoiRayOfHalfplane(t *testing.T) {
	d := NewFromPoints(append(squarePoints(), At(5, 5)))

	hp := d.Locate(At(5, -3))
	require.True(t, hp.IsHalfplane())

	seg, err := d.VoronoiCell(hp, At(5, -3))
	require.NoError(t, err)
	require.Len(t, seg, 2)

	// Ray from the bottom triangle's circumcenter, pointing away from the
	// mesh. For this symmetric fixture the circumcenter lies on the hull
	// edge itself.
	assert.InDelta(t, 5, seg[0].X, Epsilon)
	assert.InDelta(t, 0, seg[0].Y, Epsilon)
	assert.InDelta(t, 5, seg[1].X, Epsilon)
	assert.InDelta(t, -500, seg[1].Y, Epsilon)
}

func TestVoronoiRayStartsAtCircumcenter(t *testing.T) {
	// (5, 1) sits close to the bottom hull edge, pushing the circumcenter of
	// the bottom triangle far below the edge: the unbounded Voronoi edge is
	// the ray from that circumcenter, not from the edge midpoint.
	d := NewFromPoints([]Point{At(0, 0), At(10, 0), At(5, 1), At(5, 9)})

	hp := d.Locate(At(5, -3))
	require.True(t, hp.IsHalfplane())

	seg, err := d.VoronoiCell(hp, At(5, -3))
	require.NoError(t, err)
	require.Len(t, seg, 2)

	// Circumcenter of {(0,0), (10,0), (5,1)} is (5, -12).
	assert.InDelta(t, 5, seg[0].X, Epsilon)
	assert.InDelta(t, -12, seg[0].Y, Epsilon)
	assert.InDelta(t, 5, seg[1].X, Epsilon)
	assert.InDelta(t, -512, seg[1].Y, Epsilon)
}

func TestVoronoiCellErrors(t *testing.T) {
	d := NewFromPoints(append(squarePoints(), At(5, 5)))

	_, err := d.VoronoiCell(Triangle{}, At(5, 5))
	assert.ErrorIs(t, err, ErrVertexNotFound)

	tri := d.Locate(At(5, 5))
	_, err = d.VoronoiCell(tri, At(42, 42))
	assert.ErrorIs(t, err, ErrVertexNotFound)
}
