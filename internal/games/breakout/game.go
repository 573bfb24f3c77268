package breakout

import (
	"github.com/BlueyDragon/mdn-breakout-game/internal/config"
	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
)

// State is the session state.
type State int

const (
	StateRunning  State = iota // Ticks advance the simulation
	StatePaused                // Ticks are ignored until resumed
	StateGameOver              // Terminal; the ball passed the paddle
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game aggregates one session: ball, paddle, bricks, input and color source.
// Game is driven from a single goroutine; only its InputState may be written
// concurrently.
type Game struct {
	cfg    config.BreakoutConfig
	ball   *Ball
	paddle *Paddle
	bricks *BrickField
	input  *core.InputState
	colors core.ColorSource

	state      State
	tickCount  uint64
	onGameOver func(Snapshot)
}

// New creates a running game from cfg. A nil input or colors gets a fresh
// InputState or a time-seeded RandomColorSource. The ball takes its first
// color from colors.
func New(cfg config.BreakoutConfig, input *core.InputState, colors core.ColorSource) *Game {
	if input == nil {
		input = core.NewInputState()
	}
	if colors == nil {
		colors = core.NewRandomColorSource(core.RuntimeConfig{}.ResolveSeed())
	}

	g := &Game{
		cfg:    cfg,
		input:  input,
		colors: colors,
		state:  StateRunning,
	}

	g.ball = &Ball{
		X:      cfg.Arena.Width / 2,
		Y:      cfg.Arena.Height - cfg.Ball.StartOffsetBottom,
		DX:     cfg.Ball.DX,
		DY:     cfg.Ball.DY,
		Radius: cfg.Ball.Radius,
		Color:  colors.Next(),
	}
	g.paddle = NewPaddle(cfg.Arena.Width, cfg.Arena.Height, cfg.Paddle.Width, cfg.Paddle.Height)
	g.bricks = NewBrickField(LayoutFromConfig(cfg.Bricks))

	return g
}

// LayoutFromConfig converts the brick section of the config into a LayoutSpec.
func LayoutFromConfig(c config.BricksConfig) LayoutSpec {
	return LayoutSpec{
		Cols:       c.Cols,
		Rows:       c.Rows,
		Width:      c.Width,
		Height:     c.Height,
		Padding:    c.Padding,
		OffsetLeft: c.OffsetLeft,
		OffsetTop:  c.OffsetTop,
	}
}

// OnGameOver registers a callback fired exactly once, on the tick the ball
// is lost. It runs on the goroutine calling Step.
func (g *Game) OnGameOver(fn func(Snapshot)) {
	g.onGameOver = fn
}

// Step advances the simulation by one tick and returns the resulting state.
// Paused and finished games are left untouched.
func (g *Game) Step() State {
	if g.state != StateRunning {
		return g.state
	}

	g.tickCount++
	arenaW, arenaH := g.cfg.Arena.Width, g.cfg.Arena.Height

	// Paddle
	if g.input.Right() {
		g.paddle.MoveRight(g.cfg.Paddle.Step, arenaW)
	}
	if g.input.Left() {
		g.paddle.MoveLeft(g.cfg.Paddle.Step, arenaW)
	}

	// Arena edges and paddle
	hit := g.ball.CheckBoundaryCollision(arenaW, arenaH)
	if hit.LeftRight {
		g.ball.ReflectHorizontal(g.colors)
	}
	switch {
	case hit.Top:
		g.ball.ReflectVertical(g.colors)
	case hit.Bottom:
		if !g.ball.CheckPaddleCollision(g.paddle) {
			g.gameOver()
			return g.state
		}
		g.ball.ReflectVertical(g.colors)
	}

	// Bricks
	if brick := g.ball.CheckBrickCollision(g.bricks); brick != nil {
		g.bricks.Destroy(brick)
		g.ball.ReflectVertical(g.colors)
	}

	g.ball.Integrate()
	return g.state
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	if g.onGameOver != nil {
		g.onGameOver(g.Snapshot())
	}
}

// TogglePause switches between running and paused. It has no effect once
// the game is over. Returns the new state.
func (g *Game) TogglePause() State {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StatePaused:
		g.state = StateRunning
	}
	return g.state
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Cleared reports whether every brick is destroyed. The simulation keeps
// running after the field is cleared.
func (g *Game) Cleared() bool {
	return g.bricks.AllDestroyed()
}

// Tick returns the number of ticks simulated so far.
func (g *Game) Tick() uint64 {
	return g.tickCount
}

// Input returns the input state the game reads each tick.
func (g *Game) Input() *core.InputState {
	return g.input
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Ball returns the live ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle returns the live paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Bricks returns the live brick field.
func (g *Game) Bricks() *BrickField {
	return g.bricks
}
