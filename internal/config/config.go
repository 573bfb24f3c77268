// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Bricks BricksConfig `yaml:"bricks"`
	Loop   LoopConfig   `yaml:"loop"`
	Input  InputConfig  `yaml:"input"`
}

// ArenaConfig defines the play area in arena units (canvas pixels).
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's size and launch state.
type BallConfig struct {
	Radius            float64 `yaml:"radius"`
	StartOffsetBottom float64 `yaml:"start_offset_bottom"` // Start Y is arena height minus this
	DX                float64 `yaml:"dx"`                  // Per-tick horizontal velocity
	DY                float64 `yaml:"dy"`                  // Per-tick vertical velocity (negative is up)
}

// PaddleConfig defines the paddle size and speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per tick while a direction is held
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// LoopConfig defines the tick driver cadence.
type LoopConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick period as a duration.
func (l LoopConfig) Interval() time.Duration {
	return time.Duration(l.IntervalMS) * time.Millisecond
}

// InputConfig defines input emulation for terminal frontends.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press keeps its direction held
}

// Validate reports the first structural problem in the config.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive (got %gx%g)", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case 2*c.Ball.Radius >= c.Arena.Width || 2*c.Ball.Radius >= c.Arena.Height:
		return fmt.Errorf("%w: ball does not fit in the arena", ErrInvalidConfig)
	case c.Ball.StartOffsetBottom < c.Ball.Radius || c.Ball.StartOffsetBottom > c.Arena.Height-c.Ball.Radius:
		return fmt.Errorf("%w: ball start offset %g must be within [%g, %g]", ErrInvalidConfig,
			c.Ball.StartOffsetBottom, c.Ball.Radius, c.Arena.Height-c.Ball.Radius)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddle.Width > c.Arena.Width:
		return fmt.Errorf("%w: paddle is wider than the arena", ErrInvalidConfig)
	case c.Paddle.Step < 0:
		return fmt.Errorf("%w: paddle step must not be negative", ErrInvalidConfig)
	case c.Bricks.Rows < 0 || c.Bricks.Cols < 0:
		return fmt.Errorf("%w: brick counts must not be negative", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: brick size must be positive", ErrInvalidConfig)
	case c.Bricks.Padding < 0:
		return fmt.Errorf("%w: brick padding must not be negative", ErrInvalidConfig)
	case c.Loop.IntervalMS <= 0:
		return fmt.Errorf("%w: loop interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// The empty string is accepted and means "leave the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
