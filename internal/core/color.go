package core

import "fmt"

// RGB is a 24-bit color. Every component is in [0, 255] by construction.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb", the form lipgloss and most terminals accept.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the CSS form "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements color.Color so an RGB can be handed to image and ebiten APIs directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Predefined colors for game elements.
var (
	ColorBrick  = RGB{R: 0x00, G: 0x95, B: 0xDD}
	ColorPaddle = RGB{R: 0x00, G: 0x95, B: 0xDD}
	ColorText   = RGB{R: 0xEE, G: 0xEE, B: 0xEE}
)

// ColorSource produces colors on demand.
type ColorSource interface {
	Next() RGB
}

// RandomColorSource produces uniformly random colors from a seeded RNG.
type RandomColorSource struct {
	rng *SimpleRNG
}

// NewRandomColorSource creates a color source seeded with seed.
// The same seed always yields the same color sequence.
func NewRandomColorSource(seed int64) *RandomColorSource {
	return &RandomColorSource{rng: NewSimpleRNG(seed)}
}

// Next returns a color whose components are each drawn from [0, 255].
func (s *RandomColorSource) Next() RGB {
	return RGB{
		R: uint8(s.rng.Intn(256)), //#nosec G115 -- Intn(256) fits in uint8
		G: uint8(s.rng.Intn(256)), //#nosec G115 -- Intn(256) fits in uint8
		B: uint8(s.rng.Intn(256)), //#nosec G115 -- Intn(256) fits in uint8
	}
}
