package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
	"github.com/BlueyDragon/mdn-breakout-game/internal/games/breakout"
	"github.com/BlueyDragon/mdn-breakout-game/internal/loop"
)

var (
	flagTicks     uint64
	flagHoldRight bool
	flagHoldLeft  bool
	flagRealtime  bool
	flagFrame     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a display",
	Long: `Run the game headless for a number of ticks, or until the ball is lost,
and print the final state. The same seed and flags always give the same result.

Examples:
  breakout simulate --ticks 1000
  breakout simulate --ticks 5000 --right --seed 42
  breakout simulate --frame --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 1000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagHoldRight, "right", false, "Hold the right key for the whole run")
	simulateCmd.Flags().BoolVar(&flagHoldLeft, "left", false, "Hold the left key for the whole run")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the configured rate instead of as fast as possible")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame as text")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(false)
	if err != nil {
		return err
	}
	defer sess.close()

	opts := sess.opts
	seed := opts.Runtime.ResolveSeed()
	game := breakout.New(opts.Config, core.NewInputState(), core.NewRandomColorSource(seed))
	game.Input().SetRight(flagHoldRight)
	game.Input().SetLeft(flagHoldLeft)
	game.OnGameOver(func(snap breakout.Snapshot) {
		opts.Logger.Info("game over", "tick", snap.Tick, "bricks_left", len(snap.Bricks))
	})

	interval := time.Microsecond
	if flagRealtime {
		interval = opts.Runtime.TickInterval(opts.Config.Loop.Interval())
	}

	var frame *breakout.ScreenRenderer
	var renderer breakout.Renderer = breakout.NopRenderer
	if flagFrame {
		frame = breakout.NewScreenRenderer(62, 22)
		renderer = frame
	}

	lp := loop.New(game, renderer, interval,
		loop.WithLogger(opts.Logger),
		loop.WithMaxTicks(flagTicks),
	)
	if err := lp.Run(cmd.Context()); err != nil {
		return fmt.Errorf("simulation interrupted: %w", err)
	}

	snap := game.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:    %d\n", seed)
	fmt.Fprintf(out, "ticks:   %d\n", snap.Tick)
	fmt.Fprintf(out, "state:   %s\n", snap.State)
	fmt.Fprintf(out, "ball:    (%.1f, %.1f) velocity (%g, %g) color %s\n",
		snap.Ball.X, snap.Ball.Y, snap.Ball.DX, snap.Ball.DY, snap.Ball.Color.Hex())
	fmt.Fprintf(out, "paddle:  x=%.1f width=%g\n", snap.Paddle.X, snap.Paddle.Width)
	fmt.Fprintf(out, "bricks:  %d/%d left\n", len(snap.Bricks), snap.BricksTotal)
	fmt.Fprintf(out, "hash:    %d\n", snap.Hash())

	if frame != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, frame.Screen().String())
	}
	return nil
}
