package breakout

import "testing"

func defaultLayout() LayoutSpec {
	return LayoutSpec{
		Cols:       5,
		Rows:       3,
		Width:      75,
		Height:     20,
		Padding:    10,
		OffsetLeft: 30,
		OffsetTop:  30,
	}
}

func TestLayoutPositions(t *testing.T) {
	f := NewBrickField(defaultLayout())

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 30, 30},
		{2, 1, 200, 60},
		{4, 2, 370, 90},
		{1, 2, 115, 90},
	}

	for _, tt := range tests {
		b := f.At(tt.col, tt.row)
		if b == nil {
			t.Fatalf("At(%d, %d) returned nil", tt.col, tt.row)
		}
		if b.X != tt.x || b.Y != tt.y {
			t.Errorf("brick[%d][%d] = (%g, %g), want (%g, %g)", tt.col, tt.row, b.X, b.Y, tt.x, tt.y)
		}
		if b.Col != tt.col || b.Row != tt.row {
			t.Errorf("brick[%d][%d] reports col=%d row=%d", tt.col, tt.row, b.Col, b.Row)
		}
		if !b.Alive {
			t.Errorf("brick[%d][%d] should start alive", tt.col, tt.row)
		}
	}

	if f.Total() != 15 || f.AliveCount() != 15 {
		t.Errorf("Total=%d AliveCount=%d, want 15/15", f.Total(), f.AliveCount())
	}
}

func TestLayoutIdempotent(t *testing.T) {
	spec := defaultLayout()
	f := NewBrickField(spec)
	f.Destroy(f.At(1, 1))

	f.Layout(spec)

	if f.At(1, 1).Alive {
		t.Error("re-running Layout revived a destroyed brick")
	}
	if b := f.At(2, 1); b.X != 200 || b.Y != 60 {
		t.Errorf("brick[2][1] moved to (%g, %g)", b.X, b.Y)
	}
	if f.AliveCount() != 14 {
		t.Errorf("AliveCount = %d, want 14", f.AliveCount())
	}
}

func TestLayoutNegativeCounts(t *testing.T) {
	spec := defaultLayout()
	spec.Cols = -3

	f := NewBrickField(spec)

	if f.Cols() != 0 || f.Total() != 0 {
		t.Errorf("Cols=%d Total=%d, want 0", f.Cols(), f.Total())
	}
	if !f.AllDestroyed() {
		t.Error("empty field should report AllDestroyed")
	}
}

func TestDestroyIdempotent(t *testing.T) {
	f := NewBrickField(defaultLayout())
	b := f.At(0, 0)

	if !f.Destroy(b) {
		t.Error("first Destroy should report a state change")
	}
	if f.Destroy(b) {
		t.Error("second Destroy should be a no-op")
	}
	if f.Destroy(nil) {
		t.Error("Destroy(nil) should be a no-op")
	}
	if f.AliveCount() != 14 {
		t.Errorf("AliveCount = %d, want 14", f.AliveCount())
	}

	for _, alive := range f.Alive() {
		if alive.Col == 0 && alive.Row == 0 {
			t.Error("destroyed brick listed by Alive")
		}
	}
}

func TestAllDestroyed(t *testing.T) {
	f := NewBrickField(defaultLayout())

	for col := range f.Cols() {
		for row := range f.Rows() {
			if f.AllDestroyed() {
				t.Fatalf("AllDestroyed true with brick[%d][%d] alive", col, row)
			}
			f.Destroy(f.At(col, row))
		}
	}

	if !f.AllDestroyed() {
		t.Error("AllDestroyed should be true after destroying every brick")
	}
	if len(f.Alive()) != 0 {
		t.Errorf("Alive() returned %d bricks", len(f.Alive()))
	}
}

func TestAtOutOfRange(t *testing.T) {
	f := NewBrickField(defaultLayout())

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 3}} {
		if f.At(pos[0], pos[1]) != nil {
			t.Errorf("At(%d, %d) should be nil", pos[0], pos[1])
		}
	}
}

func TestBrickTouches(t *testing.T) {
	b := Brick{X: 0, Y: 0, Width: 75, Height: 20, Alive: true}

	tests := []struct {
		name   string
		cx, cy float64
		want   bool
	}{
		{"inside", 30, 10, true},
		{"near right edge", 84, 10, true},
		{"exactly radius from right edge", 85, 10, false},
		{"below", 30, 29, true},
		{"far below", 30, 31, false},
		{"corner diagonal", 82, 27, true},
		{"corner outside", 83, 28, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Touches(tt.cx, tt.cy, 10); got != tt.want {
				t.Errorf("Touches(%g, %g) = %v, want %v", tt.cx, tt.cy, got, tt.want)
			}
		})
	}
}

func TestBrickContains(t *testing.T) {
	b := Brick{X: 30, Y: 30, Width: 75, Height: 20}

	if !b.Contains(60, 40) {
		t.Error("center point should be contained")
	}
	if b.Contains(30, 40) || b.Contains(105, 40) {
		t.Error("edges are exclusive")
	}
}
