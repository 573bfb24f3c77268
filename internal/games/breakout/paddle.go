package breakout

import "github.com/BlueyDragon/mdn-breakout-game/internal/core"

// Paddle is the player's paddle. It only moves horizontally.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge, fixed at the bottom of the arena
	Width  float64
	Height float64
}

// NewPaddle creates a paddle centered at the bottom of the arena.
func NewPaddle(arenaW, arenaH, width, height float64) *Paddle {
	return &Paddle{
		X:      (arenaW - width) / 2,
		Y:      arenaH - height,
		Width:  width,
		Height: height,
	}
}

// Right returns the right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// MoveLeft moves the paddle left by step and clamps it into the arena.
func (p *Paddle) MoveLeft(step, arenaW float64) {
	p.X -= step
	p.Clamp(arenaW)
}

// MoveRight moves the paddle right by step and clamps it into the arena.
func (p *Paddle) MoveRight(step, arenaW float64) {
	p.X += step
	p.Clamp(arenaW)
}

// Clamp keeps the paddle within [0, arenaW-Width].
func (p *Paddle) Clamp(arenaW float64) {
	p.X = core.ClampF(p.X, 0, arenaW-p.Width)
}
