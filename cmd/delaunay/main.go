package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay/triangulation"
)

// Demo of dynamic Delaunay triangulation. Input is a point set in "count plus
// coordinates" form: the first line is the number of points, followed by one
// "x y" or "x y z" line per point. Prints triangulation statistics and can
// render the mesh to a PNG or the terminal.

var (
	input    = kingpin.Arg("points", "Point set file (count, then one \"x y [z]\" line per point). Reads stdin if omitted.").File()
	gridCols = kingpin.Flag("grid-cols", "Grid index columns (0 disables the index).").Default("16").Int()
	gridRows = kingpin.Flag("grid-rows", "Grid index rows (0 disables the index).").Default("16").Int()
	pngPath  = kingpin.Flag("png", "Render the triangulation to this PNG file.").String()
	scale    = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("1.0").Float64()
	preview  = kingpin.Flag("preview", "Cat the rendering to the terminal.").Bool()
	savePath = kingpin.Flag("save", "Write the vertex set back out in the input format.").String()
)

func main() {
	kingpin.Parse()

	in := io.Reader(os.Stdin)
	if *input != nil {
		defer (*input).Close()
		in = *input
	}
	points, err := readPoints(in)
	if err != nil {
		log.Fatal(err)
	}

	d := triangulation.NewFromPoints(points)
	if *gridCols > 0 && *gridRows > 0 {
		d.BuildIndex(*gridCols, *gridRows)
	}

	fmt.Printf("Read %d points\n", len(points))
	fmt.Printf("Vertices:  %d\n", d.Size())
	fmt.Printf("Triangles: %d\n", d.TriangleCount())
	fmt.Printf("Hull size: %d\n", d.HullSize())
	if min, max, ok := d.BoundingBox(); ok {
		fmt.Printf("Bounds:    %v to %v\n", min, max)
	}

	if *pngPath != "" {
		if err := d.RenderPNG(*pngPath, *scale); err != nil {
			log.Fatal(err)
		}
	}
	if *preview {
		if err := d.DbgDraw(*scale); err != nil {
			log.Fatal(err)
		}
	}
	if *savePath != "" {
		if err := writePoints(*savePath, d); err != nil {
			log.Fatal(err)
		}
	}
}

func readPoints(in io.Reader) ([]triangulation.Point, error) {
	scanner := bufio.NewScanner(in)

	// First non-blank line is the point count.
	n := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		count, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Wrapf(err, "bad point count %q", line)
		}
		n = count
		break
	}
	if n < 0 {
		return nil, errors.New("empty input")
	}

	points := make([]triangulation.Point, 0, n)
	for len(points) < n && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	if len(points) < n {
		return nil, errors.Errorf("expected %d points, got %d", n, len(points))
	}
	return points, nil
}

func parsePoint(line string) (triangulation.Point, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return triangulation.Point{}, errors.Errorf("bad point line %q", line)
	}
	coords := make([]float64, 0, 3)
	for _, part := range parts[:min(len(parts), 3)] {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return triangulation.Point{}, errors.Wrapf(err, "bad coordinate %q", part)
		}
		coords = append(coords, v)
	}
	if len(coords) == 2 {
		return triangulation.At(coords[0], coords[1]), nil
	}
	return triangulation.At3(coords[0], coords[1], coords[2]), nil
}

func writePoints(path string, d *triangulation.Triangulation) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", d.Size())
	it := d.Vertices()
	for p, more := it.Next(); more; p, more = it.Next() {
		fmt.Fprintf(w, "%g %g %g\n", p.X, p.Y, p.Z)
	}
	return errors.Wrapf(w.Flush(), "writing %s", path)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
