package breakout

import "math"

// Snapshot is a read-only copy of the game state handed to renderers.
type Snapshot struct {
	Tick        uint64
	State       State
	ArenaW      float64
	ArenaH      float64
	Ball        Ball
	Paddle      Paddle
	Bricks      []Brick // Alive bricks only, column-major
	BricksTotal int
	Cleared     bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	alive := g.bricks.Alive()
	return Snapshot{
		Tick:        g.tickCount,
		State:       g.state,
		ArenaW:      g.cfg.Arena.Width,
		ArenaH:      g.cfg.Arena.Height,
		Ball:        *g.ball,
		Paddle:      *g.paddle,
		Bricks:      alive,
		BricksTotal: g.bricks.Total(),
		Cleared:     len(alive) == 0,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + math.Float64bits(snap.Ball.DX)
	h = h*31 + math.Float64bits(snap.Ball.DY)
	h = h*31 + (uint64(snap.Ball.Color.R)<<16 | uint64(snap.Ball.Color.G)<<8 | uint64(snap.Ball.Color.B))
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + uint64(len(snap.Bricks)) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.Col) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Row) //#nosec G115 -- hash computation
	}

	return h
}
