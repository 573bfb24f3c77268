// Package loop drives a breakout game at a fixed tick period on its own
// goroutine, for frontends that do not own a scheduler.
package loop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
	"github.com/BlueyDragon/mdn-breakout-game/internal/games/breakout"
)

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// WithBeforeStep registers a hook run on the loop goroutine before each
// Step. Frontends use it to apply queued input.
func WithBeforeStep(fn func()) Option {
	return func(lp *Loop) {
		lp.beforeStep = fn
	}
}

// WithAfterStep registers a hook run on the loop goroutine after each Step
// and before the frame is drawn.
func WithAfterStep(fn func()) Option {
	return func(lp *Loop) {
		lp.afterStep = fn
	}
}

// WithMaxTicks stops the loop after n ticks. Zero means unlimited.
func WithMaxTicks(n uint64) Option {
	return func(lp *Loop) {
		lp.maxTicks = n
	}
}

// Loop ticks a game at a fixed interval and hands every frame to a renderer.
// A tick runs to completion before the next one is scheduled; ticks missed
// while a frame is slow are dropped, never queued.
type Loop struct {
	game     *breakout.Game
	renderer breakout.Renderer
	interval time.Duration
	logger   *log.Logger

	beforeStep func()
	afterStep  func()
	maxTicks   uint64

	stopOnce sync.Once
	done     chan struct{}
}

// New creates a loop. A nil renderer discards frames. The interval is
// normally resolved by RuntimeConfig.TickInterval; a non-positive one falls
// back to core.DefaultTickInterval.
func New(game *breakout.Game, renderer breakout.Renderer, interval time.Duration, opts ...Option) *Loop {
	if renderer == nil {
		renderer = breakout.NopRenderer
	}
	interval = core.RuntimeConfig{}.TickInterval(interval)

	lp := &Loop{
		game:     game,
		renderer: renderer,
		interval: interval,
		logger:   log.New(io.Discard),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// Run ticks until the game ends, Stop is called, the tick limit is reached
// or ctx is canceled. Only a canceled context produces an error.
func (lp *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(lp.interval)
	defer ticker.Stop()

	lp.logger.Debug("loop started", "interval", lp.interval)

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			lp.Stop()
			return ctx.Err()
		case <-lp.done:
			lp.logger.Debug("loop stopped", "ticks", ticks)
			return nil
		case <-ticker.C:
		}

		// Stop may race with the ticker; a stopped loop never steps again.
		select {
		case <-lp.done:
			continue
		default:
		}

		state := lp.tick()
		ticks++

		if state == breakout.StateGameOver {
			lp.logger.Debug("game over, stopping loop", "tick", lp.game.Tick())
			lp.Stop()
		} else if lp.maxTicks > 0 && ticks >= lp.maxTicks {
			lp.Stop()
		}
	}
}

func (lp *Loop) tick() breakout.State {
	if lp.beforeStep != nil {
		lp.beforeStep()
	}
	state := lp.game.Step()
	if lp.afterStep != nil {
		lp.afterStep()
	}
	lp.renderer.Draw(lp.game.Snapshot())
	return state
}

// Stop cancels further ticks. It is safe to call more than once and from
// any goroutine.
func (lp *Loop) Stop() {
	lp.stopOnce.Do(func() {
		close(lp.done)
	})
}

// Done is closed once the loop has been stopped.
func (lp *Loop) Done() <-chan struct{} {
	return lp.done
}
