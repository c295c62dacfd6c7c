package triangulation

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const dbgDrawPadding = 10

// RenderPNG draws the triangulation to a PNG file: filled interior triangles
// with stroked edges, vertices as dots. The origin is at the bottom left.
func (d *Triangulation) RenderPNG(path string, scale float64) error {
	minP, maxP, ok := d.bounds.MinMax()
	if !ok {
		return ErrNotEnoughPoints
	}

	// Set up the context
	width := int(scale*(maxP.X-minP.X)) + dbgDrawPadding*2
	height := int(scale*(maxP.Y-minP.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minP.X, -minP.Y)

	c.SetLineWidth(2)
	it := d.Triangles()
	for t, more := it.Next(); more; t, more = it.Next() {
		if t.IsHalfplane() {
			continue
		}
		a, b, cc := t.A(), t.B(), t.C()
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	vit := d.Vertices()
	c.SetRGB(1, 1, 1)
	for p, more := vit.Next(); more; p, more = vit.Next() {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// DbgDraw renders to a temp file and cats it to the terminal.
func (d *Triangulation) DbgDraw(scale float64) error {
	const path = "/tmp/delaunay.png"
	if err := d.RenderPNG(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
