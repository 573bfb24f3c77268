// Package gui provides a windowed ebiten frontend that draws the arena at
// its native pixel size and reads real key press and release state.
package gui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
	"github.com/BlueyDragon/mdn-breakout-game/internal/games/breakout"
	"github.com/BlueyDragon/mdn-breakout-game/internal/logging"
	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"
)

// windowScale enlarges the window; the logical screen stays arena-sized.
const windowScale = 2

var (
	bgColor      = color.RGBA{0xEE, 0xEE, 0xEE, 0xFF}
	overlayColor = color.RGBA{0x00, 0x00, 0x00, 0xA0}
	textColor    = color.RGBA{0x00, 0x95, 0xDD, 0xFF}
)

// App is the ebiten game wrapping one breakout session at a time.
type App struct {
	ctx    context.Context
	opts   registry.Options
	logger *log.Logger
	face   font.Face

	game  *breakout.Game
	input *core.InputState
	last  breakout.Snapshot
	games int
}

// NewApp creates the app and starts the first game.
func NewApp(ctx context.Context, opts registry.Options) *App {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	a := &App{
		ctx:    ctx,
		opts:   opts,
		logger: opts.Logger,
		face:   basicfont.Face7x13,
	}
	a.newGame()
	return a
}

func (a *App) newGame() {
	a.games++
	seed := a.opts.Runtime.SessionSeed(a.games)

	a.input = core.NewInputState()
	a.game = breakout.New(a.opts.Config, a.input, core.NewRandomColorSource(seed))

	game := a.games
	logger := a.logger
	a.game.OnGameOver(func(snap breakout.Snapshot) {
		logger.Info("game over", "game", game, "tick", snap.Tick, "bricks_left", len(snap.Bricks))
	})

	a.logger.Info("game started", "game", a.games, "seed", seed)
	a.last = a.game.Snapshot()
}

// Update runs once per ebiten tick, which is set to the game tick rate.
func (a *App) Update() error {
	if a.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	a.input.SetLeft(ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	a.input.SetRight(ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD))

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.input.Reset()
		state := a.game.TogglePause()
		a.logger.Debug("pause toggled", "state", state)
	}

	switch a.game.State() {
	case breakout.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.newGame()
		}
		return nil
	case breakout.StateRunning:
		a.game.Step()
	}

	a.last = a.game.Snapshot()
	return nil
}

// Draw renders the last snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	a.drawSnapshot(screen, a.last)
}

// drawSnapshot paints one frame in arena coordinates.
func (a *App) drawSnapshot(screen *ebiten.Image, snap breakout.Snapshot) {
	for _, b := range snap.Bricks {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), core.ColorBrick, false)
	}

	p := snap.Paddle
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), core.ColorPaddle, false)

	ball := snap.Ball
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.Radius), ball.Color, true)

	if snap.Cleared {
		a.drawCentered(screen, int(snap.ArenaH)/2, "YOU WIN!")
	}

	switch snap.State {
	case breakout.StatePaused:
		a.drawOverlay(screen, snap, "PAUSED", "Press P to resume")
	case breakout.StateGameOver:
		a.drawOverlay(screen, snap, "GAME OVER", "Press R to restart")
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, snap breakout.Snapshot, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.ArenaW), float32(snap.ArenaH), overlayColor, false)
	mid := int(snap.ArenaH) / 2
	a.drawCenteredColor(screen, mid-8, title, color.White)
	a.drawCenteredColor(screen, mid+12, subtitle, color.White)
}

func (a *App) drawCentered(screen *ebiten.Image, y int, s string) {
	a.drawCenteredColor(screen, y, s, textColor)
}

func (a *App) drawCenteredColor(screen *ebiten.Image, y int, s string, clr color.Color) {
	bounds := text.BoundString(a.face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, a.face, x, y, clr)
}

// Layout keeps the logical screen at arena size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return int(a.opts.Config.Arena.Width), int(a.opts.Config.Arena.Height)
}

// Frontend runs breakout in a desktop window.
type Frontend struct{}

// Name returns the registry name.
func (Frontend) Name() string {
	return "gui"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "ebiten desktop window at the arena's native resolution"
}

// Run opens the window and blocks until it is closed.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	interval := opts.Runtime.TickInterval(opts.Config.Loop.Interval())
	tps := max(int(time.Second/interval), 1)

	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(opts.Config.Arena.Width)*windowScale, int(opts.Config.Arena.Height)*windowScale)
	ebiten.SetWindowTitle("Breakout")

	if err := ebiten.RunGame(NewApp(ctx, opts)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("gui", func() registry.Frontend {
		return Frontend{}
	})
}
