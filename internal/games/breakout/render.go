package breakout

import (
	"fmt"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum terminal size for the cell renderer.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Renderer consumes snapshots once per tick.
type Renderer interface {
	Draw(snap Snapshot)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(snap Snapshot)

// Draw calls f(snap).
func (f RendererFunc) Draw(snap Snapshot) {
	f(snap)
}

// NopRenderer discards every frame.
var NopRenderer Renderer = RendererFunc(func(Snapshot) {})

// ScreenRenderer rasterizes snapshots into a character cell buffer.
// The arena is scaled to fit the screen below a one-line HUD.
type ScreenRenderer struct {
	screen *core.Screen
	last   Snapshot
}

// NewScreenRenderer creates a renderer with a buffer of the given size.
func NewScreenRenderer(width, height int) *ScreenRenderer {
	return &ScreenRenderer{screen: core.NewScreen(width, height)}
}

// Resize changes the buffer size and redraws the last snapshot.
func (r *ScreenRenderer) Resize(width, height int) {
	r.screen.Resize(width, height)
	Render(r.screen, r.last)
}

// Screen returns the buffer holding the last frame.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Draw rasterizes snap into the buffer.
func (r *ScreenRenderer) Draw(snap Snapshot) {
	r.last = snap
	Render(r.screen, snap)
}

// Render draws snap onto dst.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if snap.ArenaW <= 0 || snap.ArenaH <= 0 {
		return
	}

	renderHUD(dst, snap)

	// Row 0 is the HUD.
	frame := dst.Bounds()
	frame.Y, frame.H = 1, frame.H-1
	dst.DrawBox(frame)
	v := newViewport(frame.Inset(1), snap.ArenaW, snap.ArenaH)

	for _, b := range snap.Bricks {
		dst.FillRect(v.rect(b.X, b.Y, b.Width, b.Height), BrickChar, core.ColorBrick)
	}

	p := snap.Paddle
	dst.FillRect(v.rect(p.X, p.Y, p.Width, p.Height), PaddleChar, core.ColorPaddle)

	bx, by := v.point(snap.Ball.X, snap.Ball.Y)
	dst.SetColored(bx, by, BallChar, snap.Ball.Color)

	renderOverlay(dst, snap)
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Bricks: %d/%d", len(snap.Bricks), snap.BricksTotal))

	if snap.Cleared {
		dst.DrawTextCentered(0, "YOU WIN!")
	}

	tickText := fmt.Sprintf("Tick: %d", snap.Tick)
	dst.DrawText(dst.Width()-len(tickText)-1, 0, tickText)
}

func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.State {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", "Press R to restart")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// viewport maps arena units onto a cell rectangle.
type viewport struct {
	area           core.Rect
	arenaW, arenaH float64
}

func newViewport(area core.Rect, arenaW, arenaH float64) viewport {
	return viewport{area: area, arenaW: arenaW, arenaH: arenaH}
}

// point maps an arena position to the cell containing it, clamped to the area.
func (v viewport) point(x, y float64) (int, int) {
	cx := core.Clamp(int(x*float64(v.area.W)/v.arenaW), 0, v.area.W-1)
	cy := core.Clamp(int(y*float64(v.area.H)/v.arenaH), 0, v.area.H-1)
	return v.area.X + cx, v.area.Y + cy
}

// rect maps an arena rectangle to cells. Non-empty input covers at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0, y0 := v.point(x, y)
	x1, y1 := v.point(x+w, y+h)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
