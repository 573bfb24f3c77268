package core

import "time"

// DefaultTickInterval is the tick period used when nothing else is configured.
const DefaultTickInterval = 10 * time.Millisecond

// RuntimeConfig contains the platform-level settings handed to a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontends)
	ScreenH  int   // Screen height in characters (terminal frontends)
	TickRate int   // Simulation ticks per second; 0 uses the game config interval
	Seed     int64 // RNG seed for the ball color sequence; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
		Seed:     0,
	}
}

// TickInterval resolves the tick period. An explicit TickRate wins over fallback.
func (c RuntimeConfig) TickInterval(fallback time.Duration) time.Duration {
	if c.TickRate > 0 {
		return time.Second / time.Duration(c.TickRate)
	}
	if fallback <= 0 {
		return DefaultTickInterval
	}
	return fallback
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// SessionSeed returns the seed for the nth game of a run, counting from 1.
// Seeded runs stay reproducible while each restart gets a different sequence.
func (c RuntimeConfig) SessionSeed(n int) int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed + int64(n-1)
}
