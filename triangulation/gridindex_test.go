package triangulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The index must never change results, only shorten walks. Every test here
// compares an indexed instance against an index-free twin.
func assertLocateAgreement(t *testing.T, indexed, plain *Triangulation, queries []Point) {
	t.Helper()
	for _, q := range queries {
		a := indexed.Locate(q)
		b := plain.Locate(q)
		require.Equal(t, b.Valid(), a.Valid(), "at %v", q)
		if !a.Valid() {
			continue
		}
		assert.Equal(t, b.IsHalfplane(), a.IsHalfplane(), "at %v", q)
		if !a.IsHalfplane() && !b.IsHalfplane() {
			assert.ElementsMatch(t, a.Points(), b.Points(), "at %v", q)
		}
	}
}

func TestGridIndexOnEmptyTriangulation(t *testing.T) {
	d := New()
	d.BuildIndex(8, 8)
	assert.False(t, d.Locate(At(1, 1)).Valid())

	// The index built before any point exists heals as points arrive.
	for _, p := range append(squarePoints(), At(5, 5)) {
		d.Insert(p)
	}
	tri := d.Locate(At(2, 2))
	require.True(t, tri.Valid())
	assert.False(t, tri.IsHalfplane())
}

func TestGridIndexAgreesAfterMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	indexed := New()
	indexed.BuildIndex(16, 16)
	plain := New()

	var pts []Point
	for i := 0; i < 120; i++ {
		p := At(rng.Float64()*100, rng.Float64()*100)
		pts = append(pts, p)
		indexed.Insert(p)
		plain.Insert(p)
	}

	deleted := 0
	for _, p := range pts {
		if deleted >= 15 {
			break
		}
		errA := indexed.Delete(p)
		errB := plain.Delete(p)
		assert.Equal(t, errB == nil, errA == nil, "deleting %v", p)
		if errA == nil {
			deleted++
		}
	}
	require.NotZero(t, deleted)

	var queries []Point
	for i := 0; i < 80; i++ {
		queries = append(queries, At(rng.Float64()*120-10, rng.Float64()*120-10))
	}
	assertLocateAgreement(t, indexed, plain, queries)
}

func TestGridIndexRebuildsWhenBoundsGrow(t *testing.T) {
	indexed := NewFromPoints(squarePoints())
	indexed.BuildIndex(4, 4)
	plain := NewFromPoints(squarePoints())

	// Push the bounding box far outside the indexed region.
	indexed.Insert(At(200, 200))
	plain.Insert(At(200, 200))

	// None of these sit exactly on a mesh edge: a query on an edge can stop
	// in either flanking triangle depending on the walk's seed.
	queries := []Point{At(5, 4), At(20, 25), At(150, 140), At(-5, -5), At(50, 120)}
	assertLocateAgreement(t, indexed, plain, queries)
}

func TestDropIndex(t *testing.T) {
	d := NewFromPoints(append(squarePoints(), At(5, 5)))
	d.BuildIndex(8, 8)
	tri := d.Locate(At(2, 1))
	d.DropIndex()
	assert.ElementsMatch(t, tri.Points(), d.Locate(At(2, 1)).Points())
}
