// Package breakout implements the brick breaker simulation: ball, paddle,
// brick grid and the per-tick collision loop.
package breakout

// LayoutSpec describes the brick grid geometry.
type LayoutSpec struct {
	Cols, Rows    int
	Width, Height float64
	Padding       float64
	OffsetLeft    float64
	OffsetTop     float64
}

// Brick is a single destructible brick.
type Brick struct {
	Col, Row      int
	X, Y          float64 // Top-left corner
	Width, Height float64
	Alive         bool
}

// Contains reports whether the point lies strictly inside the brick.
func (b *Brick) Contains(x, y float64) bool {
	return x > b.X && x < b.X+b.Width && y > b.Y && y < b.Y+b.Height
}

// Touches reports whether a circle at (cx, cy) with radius r overlaps the brick.
func (b *Brick) Touches(cx, cy, r float64) bool {
	if b.Contains(cx, cy) {
		return true
	}
	nx := min(max(cx, b.X), b.X+b.Width)
	ny := min(max(cy, b.Y), b.Y+b.Height)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy < r*r
}

// BrickField owns the grid of bricks, stored column-major as [col][row].
type BrickField struct {
	cols, rows int
	bricks     [][]Brick
}

// NewBrickField creates a field with every brick alive and laid out.
func NewBrickField(spec LayoutSpec) *BrickField {
	f := &BrickField{}
	f.Layout(spec)
	return f
}

// Layout computes every brick position from spec:
//
//	x = col*(width+padding) + offsetLeft
//	y = row*(height+padding) + offsetTop
//
// Re-running with the same grid dimensions only recomputes positions, so
// destroyed bricks stay destroyed. Negative counts are treated as zero.
func (f *BrickField) Layout(spec LayoutSpec) {
	cols, rows := max(spec.Cols, 0), max(spec.Rows, 0)
	if f.bricks == nil || cols != f.cols || rows != f.rows {
		f.cols, f.rows = cols, rows
		f.bricks = make([][]Brick, cols)
		for c := range f.bricks {
			f.bricks[c] = make([]Brick, rows)
			for r := range f.bricks[c] {
				f.bricks[c][r].Alive = true
			}
		}
	}

	for c := range cols {
		for r := range rows {
			b := &f.bricks[c][r]
			b.Col, b.Row = c, r
			b.X = float64(c)*(spec.Width+spec.Padding) + spec.OffsetLeft
			b.Y = float64(r)*(spec.Height+spec.Padding) + spec.OffsetTop
			b.Width, b.Height = spec.Width, spec.Height
		}
	}
}

// Cols returns the number of columns.
func (f *BrickField) Cols() int {
	return f.cols
}

// Rows returns the number of rows.
func (f *BrickField) Rows() int {
	return f.rows
}

// At returns the brick at (col, row), or nil when out of range.
func (f *BrickField) At(col, row int) *Brick {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return nil
	}
	return &f.bricks[col][row]
}

// Destroy marks a brick as destroyed. Destroying a nil or already destroyed
// brick is a no-op. Reports whether the brick changed state.
func (f *BrickField) Destroy(b *Brick) bool {
	if b == nil || !b.Alive {
		return false
	}
	b.Alive = false
	return true
}

// Total returns the number of bricks in the grid.
func (f *BrickField) Total() int {
	return f.cols * f.rows
}

// AliveCount returns the number of bricks not yet destroyed.
func (f *BrickField) AliveCount() int {
	count := 0
	for _, col := range f.bricks {
		for _, b := range col {
			if b.Alive {
				count++
			}
		}
	}
	return count
}

// AllDestroyed reports whether every brick has been destroyed.
func (f *BrickField) AllDestroyed() bool {
	return f.AliveCount() == 0
}

// Alive returns copies of the alive bricks in column-major order.
func (f *BrickField) Alive() []Brick {
	out := make([]Brick, 0, f.Total())
	for _, col := range f.bricks {
		for _, b := range col {
			if b.Alive {
				out = append(out, b)
			}
		}
	}
	return out
}
