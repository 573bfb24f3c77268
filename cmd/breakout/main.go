// breakout is a brick breaker for the terminal and the desktop.
//
// Usage:
//
//	breakout play                  - Play in the terminal (Bubble Tea)
//	breakout play --frontend gui   - Play in a desktop window
//	breakout frontends             - List available frontends
//	breakout simulate --ticks 500  - Run headless and print the final state
//	breakout serve                 - Serve the game over SSH
//	breakout config dump           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: config interval)
//	--seed <value>        - Set RNG seed for reproducible ball colors
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BlueyDragon/mdn-breakout-game/internal/config"
	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
	"github.com/BlueyDragon/mdn-breakout-game/internal/logging"
	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"

	// Import frontends to register them
	_ "github.com/BlueyDragon/mdn-breakout-game/internal/platform/gui"
	_ "github.com/BlueyDragon/mdn-breakout-game/internal/platform/term"
	_ "github.com/BlueyDragon/mdn-breakout-game/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, break the bricks",
	Long: `Breakout is a single-screen brick breaker. Deflect the ball with the
paddle and clear the bricks; the game ends when the ball gets past you.

Available commands:
  play       - Play a game
  frontends  - Show available frontends
  simulate   - Run the simulation headless
  serve      - Start SSH server for remote play
  config     - Inspect configuration

Examples:
  breakout play
  breakout play --frontend term --difficulty easy
  breakout simulate --ticks 2000 --right --seed 7
  breakout serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = config interval)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// session bundles what every command resolves from the global flags.
type session struct {
	opts  registry.Options
	close func()
}

// newSession loads the config and builds the logger. Interactive frontends
// own the terminal, so without --log-file their logs are discarded.
func newSession(interactive bool) (*session, error) {
	w, closeLog, err := logWriter(interactive)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(w, flagLogLevel, "breakout")
	if err != nil {
		closeLog()
		return nil, err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	return &session{
		opts: registry.Options{
			Config:  cfg,
			Runtime: runtime,
			Logger:  logger,
		},
		close: closeLog,
	}, nil
}

func logWriter(interactive bool) (io.Writer, func(), error) {
	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	if interactive {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

// loadConfig resolves the game config and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.BreakoutConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, source, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, fmt.Errorf("cannot load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
		logger.Debug("difficulty preset applied", "preset", preset)
	}
	return cfg, nil
}
