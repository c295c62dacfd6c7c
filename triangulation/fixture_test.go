package triangulation

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs point clouds. This is not a
// full (or even correct) svg parser. It parses the SVG and then finds
// whatever the first polygon is, then returns its points as a cloud (the
// connectivity is irrelevant, only the positions matter). If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, At(x, y))
	}
	return points
}

func TestFixtureCloud(t *testing.T) {
	points := LoadFixture("cloud")
	require.NotEmpty(t, points)

	d := NewFromPoints(points)
	assert.Equal(t, len(points), d.Size())
	assertDelaunay(t, d)
	assertEuler(t, d)

	// Every input point must be locatable at itself.
	for _, p := range points {
		tri := d.Locate(p)
		require.True(t, tri.Valid())
		assert.True(t, tri.IsCorner(p), "lost vertex %v", p)
	}
}

func TestFixtureCloudDeletions(t *testing.T) {
	d := NewFromPoints(LoadFixture("cloud"))
	before := d.Size()

	deleted := 0
	it := d.Vertices()
	for p, more := it.Next(); more && deleted < 5; p, more = it.Next() {
		if d.Delete(p) == nil {
			deleted++
		}
	}
	require.NotZero(t, deleted)
	assert.Equal(t, before-deleted, d.Size())
	assertDelaunay(t, d)
	assertEuler(t, d)
}
