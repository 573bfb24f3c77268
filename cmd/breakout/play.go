package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing breakout.

Controls:
  Left/A, Right/D  - Move paddle
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Terminal frontends only see key presses, so a press keeps the paddle moving
for a short time (input.hold_ticks); key repeat keeps it going.

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Config values unchanged
  hard   - Faster ball, narrower paddle

Examples:
  breakout play
  breakout play --frontend gui
  breakout play --frontend term --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to play with (see 'breakout frontends')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q (run 'breakout frontends' to see available frontends)", flagFrontend)
	}

	sess, err := newSession(true)
	if err != nil {
		return err
	}
	defer sess.close()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		sess.opts.Runtime.ScreenW = w
		sess.opts.Runtime.ScreenH = h
	}

	fe, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	logger := sess.opts.Logger
	logger.Info("session started", "frontend", fe.Name(), "fps", flagFPS, "seed", flagSeed)
	if err := fe.Run(cmd.Context(), sess.opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("session ended", "frontend", fe.Name())
	return nil
}
