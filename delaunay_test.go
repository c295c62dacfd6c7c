package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestDelaunay(t *testing.T) {
	d := New(At(0, 0), At(10, 0), At(10, 10), At(0, 10))

	assert.Equal(t, 4, d.Size())
	assert.Equal(t, 2, d.TriangleCount())
	assert.True(t, d.Contains(At(5, 5)))
	assert.False(t, d.Contains(At(15, 5)))

	d.Insert(At3(5, 5, 7))
	z, err := d.ElevationAt(At(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 7.0, z)

	require.NoError(t, d.Delete(At(5, 5)))
	assert.ErrorIs(t, d.Delete(At(0, 0)), ErrHullVertex)
}
