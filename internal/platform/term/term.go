// Package term provides a tcell frontend. Terminal events are read on their
// own goroutine while a loop.Loop ticks the game on another.
package term

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
	"github.com/BlueyDragon/mdn-breakout-game/internal/games/breakout"
	"github.com/BlueyDragon/mdn-breakout-game/internal/logging"
	"github.com/BlueyDragon/mdn-breakout-game/internal/loop"
	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"
)

const helpLine = "←/a →/d move  p pause  r restart  q quit"

// Session plays games on a tcell screen until the user quits.
type Session struct {
	screen tcell.Screen
	opts   registry.Options
	logger *log.Logger

	mu       sync.Mutex // Guards renderer and screen writes
	renderer *breakout.ScreenRenderer

	games   atomic.Int32
	prepare func(*breakout.Game) // Test hook run on every new game
}

// NewSession creates a session on an initialized screen.
func NewSession(screen tcell.Screen, opts registry.Options) *Session {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	w, h := screen.Size()
	return &Session{
		screen:   screen,
		opts:     opts,
		logger:   opts.Logger,
		renderer: breakout.NewScreenRenderer(w, max(h-1, 1)),
	}
}

// Games returns the number of games started so far.
func (s *Session) Games() int {
	return int(s.games.Load())
}

// Run plays until quit or ctx is canceled. The screen is not finalized.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		quit, err := s.play(ctx, events)
		if err != nil || quit {
			return err
		}
	}
}

// play runs one game. It returns when the user quits, restarts after game
// over, or ctx is canceled.
func (s *Session) play(ctx context.Context, events <-chan tcell.Event) (quit bool, err error) {
	n := int(s.games.Add(1))
	seed := s.opts.Runtime.SessionSeed(n)

	game := breakout.New(s.opts.Config, core.NewInputState(), core.NewRandomColorSource(seed))
	game.OnGameOver(func(snap breakout.Snapshot) {
		s.logger.Info("game over", "game", n, "tick", snap.Tick, "bricks_left", len(snap.Bricks))
	})
	if s.prepare != nil {
		s.prepare(game)
	}
	s.logger.Info("game started", "game", n, "seed", seed)

	// Actions are applied on the loop goroutine, which owns the game and hold.
	actions := make(chan core.Action, 16)
	hold := core.NewKeyHold(game.Input(), s.opts.Config.Input.HoldTicks)
	apply := func() {
		for {
			select {
			case a := <-actions:
				if a == core.ActionPause {
					hold.Release()
					game.TogglePause()
				} else {
					hold.Press(a)
				}
			default:
				return
			}
		}
	}

	interval := s.opts.Runtime.TickInterval(s.opts.Config.Loop.Interval())
	lp := loop.New(game, s, interval,
		loop.WithLogger(s.logger),
		loop.WithBeforeStep(apply),
		loop.WithAfterStep(hold.Tick),
	)
	s.Draw(game.Snapshot())

	runErr := make(chan error, 1)
	go func() { runErr <- lp.Run(ctx) }()

	finished := false
	for {
		select {
		case err := <-runErr:
			if err != nil {
				return false, err
			}
			// Game over; the final frame is on screen. Wait for r or q.
			finished = true
			runErr = nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.resize()
			case *tcell.EventKey:
				switch a := mapKey(ev); a {
				case core.ActionQuit:
					lp.Stop()
					if !finished {
						<-runErr
					}
					return true, nil
				case core.ActionRestart:
					if finished {
						return false, nil
					}
				case core.ActionLeft, core.ActionRight, core.ActionPause:
					if !finished {
						select {
						case actions <- a:
						default: // Loop is behind; drop the key
						}
					}
				}
			}

		case <-ctx.Done():
			lp.Stop()
			if !finished {
				<-runErr
			}
			return false, ctx.Err()
		}
	}
}

// Draw renders a snapshot to the tcell screen. It implements breakout.Renderer.
func (s *Session) Draw(snap breakout.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.renderer.Draw(snap)
	s.flush()
}

func (s *Session) resize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	s.renderer.Resize(w, max(h-1, 1))
	s.screen.Sync()
	s.flush()
}

// flush copies the cell buffer to the screen. Caller holds mu.
func (s *Session) flush() {
	buf := s.renderer.Screen()
	s.screen.Clear()
	for y := range buf.Height() {
		for x := range buf.Width() {
			cell := buf.GetCell(x, y)
			style := tcell.StyleDefault
			if cell.Tinted {
				style = style.Foreground(tcell.NewRGBColor(int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B)))
			}
			s.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}

	i := 0
	for _, r := range helpLine {
		s.screen.SetContent(1+i, buf.Height(), r, nil, tcell.StyleDefault.Dim(true))
		i++
	}
	s.screen.Show()
}

// mapKey translates a tcell key event to a game action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'p':
			return core.ActionPause
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Frontend runs breakout full-screen with tcell.
type Frontend struct{}

// Name returns the registry name.
func (Frontend) Name() string {
	return "term"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "tcell full-screen terminal with a background tick loop"
}

// Run initializes the terminal and plays until the user quits.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return NewSession(screen, opts).Run(ctx)
}

func init() {
	registry.Register("term", func() registry.Frontend {
		return Frontend{}
	})
}
