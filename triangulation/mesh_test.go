package triangulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTriangleNormalizesWinding(t *testing.T) {
	m := newMesh()

	// Clockwise input gets its b and c swapped.
	f := m.newTriangle(At(0, 0), At(0, 10), At(10, 0))
	cl := m.at(f)
	assert.Equal(t, Left, Orient(cl.a, cl.b, cl.c))
	assert.Equal(t, At(0, 0), cl.a)

	// Counter-clockwise input is kept as given.
	g := m.newTriangle(At(0, 0), At(10, 0), At(0, 10))
	gl := m.at(g)
	assert.Equal(t, At(10, 0), gl.b)
	assert.Equal(t, At(0, 10), gl.c)
}

func TestThirdCornerOfSentinelPanics(t *testing.T) {
	m := newMesh()
	f := m.newHalfplane(At(0, 0), At(10, 0))
	assert.Panics(t, func() { m.at(f).third() })
}

func TestCircumcircle(t *testing.T) {
	m := newMesh()
	f := m.newTriangle(At(0, 0), At(10, 0), At(5, 5))
	cc := m.at(f).circumcircle()
	assert.InDelta(t, 5, cc.center.X, Epsilon)
	assert.InDelta(t, 0, cc.center.Y, Epsilon)
	assert.InDelta(t, 25, cc.radiusSq, Epsilon)

	assert.True(t, m.at(f).circumContains(At(5, 1)))
	assert.False(t, m.at(f).circumContains(At(5, 6)))
	// On the circle is not inside.
	assert.False(t, m.at(f).circumContains(At(0, 0)))
}

func TestContains(t *testing.T) {
	m := newMesh()
	f := m.newTriangle(At(0, 0), At(10, 0), At(0, 10))
	cl := m.at(f)

	assert.True(t, cl.contains(At(2, 2)))
	assert.True(t, cl.contains(At(5, 0)), "boundary is inside")
	assert.True(t, cl.contains(At(0, 0)), "corner is inside")
	assert.False(t, cl.contains(At(6, 6)))
	assert.False(t, cl.contains(At(-1, 0)))

	assert.True(t, cl.containsExclusive(At(2, 2)))
	assert.False(t, cl.containsExclusive(At(5, 0)))
	assert.False(t, cl.containsExclusive(At(0, 0)))
}

func TestPlaneZ(t *testing.T) {
	m := newMesh()
	// Plane z = x + 2y.
	f := m.newTriangle(At3(0, 0, 0), At3(10, 0, 10), At3(0, 10, 20))
	assert.InDelta(t, 9, m.at(f).planeZ(At(3, 3)), Epsilon)
	assert.InDelta(t, 10, m.at(f).planeZ(At(10, 0)), Epsilon)
}

func TestPromoteAndReleaseKeepCounts(t *testing.T) {
	m := newMesh()
	hf := m.newHalfplane(At(0, 0), At(10, 0))
	tf := m.newTriangle(At(0, 0), At(10, 0), At(5, 5))
	assert.Equal(t, 1, m.interior)
	assert.Equal(t, 1, m.sentinels)

	m.promote(hf, At(5, 5))
	assert.Equal(t, 2, m.interior)
	assert.Equal(t, 0, m.sentinels)

	m.release(tf)
	assert.Equal(t, 1, m.interior)
	assert.False(t, m.at(tf).alive)

	// The freed slot is recycled.
	again := m.newTriangle(At(1, 1), At(2, 1), At(1, 2))
	assert.Equal(t, tf, again)
	assert.True(t, m.at(again).alive)
}

func TestSetNeighborAcross(t *testing.T) {
	m := newMesh()
	f := m.newTriangle(At(0, 0), At(10, 0), At(0, 10))
	g := m.newTriangle(At(0, 0), At(10, 0), At(5, -5))

	m.at(f).setNeighborAcross(At(10, 0), At(0, 0), g)
	assert.Equal(t, g, m.at(f).ab)
}
