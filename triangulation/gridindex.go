package triangulation

// GridIndex shortens point-location walks with a uniform grid laid over the
// indexed region. Each grid cell remembers one mesh cell near it; a query
// snaps to its grid cell and starts the location walk from the remembered
// face instead of from the triangulation's global start. The index is purely
// an accelerator: a stale or missing entry only means a longer walk, never a
// wrong answer.
type GridIndex struct {
	d          *Triangulation
	cols, rows int

	// Region covered by the grid. Queries and updates outside it fall back
	// to unindexed behavior until a rebuild grows the region.
	min, max Point
	cellW    float64
	cellH    float64
	grid     []Face
}

func newGridIndex(d *Triangulation, cols, rows int) *GridIndex {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &GridIndex{d: d, cols: cols, rows: rows}
	g.rebuild()
	return g
}

// rebuild repopulates the whole grid by walking it row by row, locating each
// cell's center seeded from the previous cell. Adjacent centers are close, so
// each walk is short.
func (g *GridIndex) rebuild() {
	g.grid = make([]Face, g.cols*g.rows)
	for i := range g.grid {
		g.grid[i] = NoFace
	}
	g.min, g.max = Point{}, Point{}
	g.cellW, g.cellH = 0, 0

	min, max, ok := g.d.bounds.MinMax()
	if !ok || g.d.allCollinear {
		return
	}
	seed := g.d.start
	if seed == NoFace {
		return
	}
	g.min, g.max = min, max
	g.cellW = (max.X - min.X) / float64(g.cols)
	g.cellH = (max.Y - min.Y) / float64(g.rows)

	for row := 0; row < g.rows; row++ {
		rowSeed := seed
		for col := 0; col < g.cols; col++ {
			center := Point{
				X: g.min.X + (float64(col)+0.5)*g.cellW,
				Y: g.min.Y + (float64(row)+0.5)*g.cellH,
			}
			f := g.d.locateFrom(rowSeed, center)
			g.grid[row*g.cols+col] = f
			rowSeed = f
			if col == 0 {
				seed = f
			}
		}
	}
}

// lookup returns a seed face for locating p, or NoFace when the index cannot
// help (outside the region, unbuilt, or the entry has been recycled).
func (g *GridIndex) lookup(p Point) Face {
	if g.cellW <= 0 || g.cellH <= 0 {
		return NoFace
	}
	if p.X < g.min.X || p.X > g.max.X || p.Y < g.min.Y || p.Y > g.max.Y {
		return NoFace
	}
	col := g.clampCol(p.X)
	row := g.clampRow(p.Y)
	f := g.grid[row*g.cols+col]
	if f == NoFace || !g.d.mesh.at(f).alive {
		return NoFace
	}
	return f
}

// update refreshes the entries under the given changed faces. If the
// triangulation's bounding box has outgrown the indexed region the whole
// grid is rebuilt instead.
func (g *GridIndex) update(faces []Face) {
	min, max, ok := g.d.bounds.MinMax()
	if !ok {
		return
	}
	if g.cellW <= 0 || g.cellH <= 0 ||
		min.X < g.min.X || min.Y < g.min.Y || max.X > g.max.X || max.Y > g.max.Y {
		g.rebuild()
		return
	}
	for _, f := range faces {
		cl := g.d.mesh.at(f)
		if !cl.alive || cl.kind != interiorCell {
			continue
		}
		loX, hiX := cl.a.X, cl.a.X
		loY, hiY := cl.a.Y, cl.a.Y
		for _, q := range []Point{cl.b, cl.c} {
			if q.X < loX {
				loX = q.X
			}
			if q.X > hiX {
				hiX = q.X
			}
			if q.Y < loY {
				loY = q.Y
			}
			if q.Y > hiY {
				hiY = q.Y
			}
		}
		for row := g.clampRow(loY); row <= g.clampRow(hiY); row++ {
			for col := g.clampCol(loX); col <= g.clampCol(hiX); col++ {
				g.grid[row*g.cols+col] = f
			}
		}
	}
}

func (g *GridIndex) clampCol(x float64) int {
	col := int((x - g.min.X) / g.cellW)
	if col < 0 {
		col = 0
	}
	if col >= g.cols {
		col = g.cols - 1
	}
	return col
}

func (g *GridIndex) clampRow(y float64) int {
	row := int((y - g.min.Y) / g.cellH)
	if row < 0 {
		row = 0
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return row
}
