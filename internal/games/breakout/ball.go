package breakout

import "github.com/BlueyDragon/mdn-breakout-game/internal/core"

// Ball is the bouncing ball. Coordinates are arena units; (X, Y) is the center.
type Ball struct {
	X, Y   float64  // Position (center)
	DX, DY float64  // Velocity per tick
	Radius float64  // Constant for the ball's lifetime
	Color  core.RGB // Reassigned on every bounce
}

// BoundaryHit reports which arena edges the ball's next position crosses.
// Top and Bottom are mutually exclusive; Top wins.
type BoundaryHit struct {
	LeftRight bool
	Top       bool
	Bottom    bool
}

// Next returns the prospective position after one integration step.
func (b *Ball) Next() (x, y float64) {
	return b.X + b.DX, b.Y + b.DY
}

// Integrate advances the position by one fixed step.
func (b *Ball) Integrate() {
	b.X += b.DX
	b.Y += b.DY
}

// ReflectHorizontal reverses horizontal velocity and recolors the ball.
func (b *Ball) ReflectHorizontal(colors core.ColorSource) {
	b.DX = -b.DX
	b.Color = colors.Next()
}

// ReflectVertical reverses vertical velocity and recolors the ball.
func (b *Ball) ReflectVertical(colors core.ColorSource) {
	b.DY = -b.DY
	b.Color = colors.Next()
}

// CheckBoundaryCollision tests the prospective position against the arena edges.
// It does not mutate the ball.
func (b *Ball) CheckBoundaryCollision(arenaW, arenaH float64) BoundaryHit {
	nx, ny := b.Next()

	var hit BoundaryHit
	hit.LeftRight = nx > arenaW-b.Radius || nx < b.Radius
	if ny < b.Radius {
		hit.Top = true
	} else if ny > arenaH-b.Radius {
		hit.Bottom = true
	}
	return hit
}

// CheckPaddleCollision reports whether the ball's center x lies strictly
// inside the paddle span. Only the center is tested, not the radius; the
// caller consults it only when the ball is about to cross the bottom edge.
func (b *Ball) CheckPaddleCollision(p *Paddle) bool {
	return b.X > p.X && b.X < p.Right()
}

// CheckBrickCollision returns the first alive brick touched by the ball's
// current footprint, scanning columns outermost, or nil.
// The footprint is the disk of Radius around (X, Y), tested against each brick rectangle.
func (b *Ball) CheckBrickCollision(f *BrickField) *Brick {
	for col := range f.Cols() {
		for row := range f.Rows() {
			brick := f.At(col, row)
			if brick.Alive && brick.Touches(b.X, b.Y, b.Radius) {
				return brick
			}
		}
	}
	return nil
}
