package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  480,
			Height: 320,
		},
		Ball: BallConfig{
			Radius:            10,
			StartOffsetBottom: 30,
			DX:                2,
			DY:                -2,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Step:   7,
		},
		Bricks: BricksConfig{
			Rows:       3,
			Cols:       5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Loop: LoopConfig{
			IntervalMS: 10,
		},
		Input: InputConfig{
			HoldTicks: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
