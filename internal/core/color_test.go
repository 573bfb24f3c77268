package core

import "testing"

func TestRandomColorSourceRange(t *testing.T) {
	src := NewRandomColorSource(42)

	seenLow, seenHigh := false, false
	for range 5000 {
		c := src.Next()
		for _, v := range []int{int(c.R), int(c.G), int(c.B)} {
			if v < 0 || v > 255 {
				t.Fatalf("component %d out of range", v)
			}
			if v < 16 {
				seenLow = true
			}
			if v > 239 {
				seenHigh = true
			}
		}
	}

	if !seenLow || !seenHigh {
		t.Errorf("expected samples near both ends of [0,255], low=%v high=%v", seenLow, seenHigh)
	}
}

func TestRandomColorSourceDeterminism(t *testing.T) {
	a := NewRandomColorSource(7)
	b := NewRandomColorSource(7)

	for i := range 100 {
		if ca, cb := a.Next(), b.Next(); ca != cb {
			t.Fatalf("sample %d differs: %v vs %v", i, ca, cb)
		}
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{R: 0, G: 149, B: 221}

	if got := c.Hex(); got != "#0095dd" {
		t.Errorf("Hex() = %q, expected #0095dd", got)
	}
	if got := c.String(); got != "rgb(0, 149, 221)" {
		t.Errorf("String() = %q, expected rgb(0, 149, 221)", got)
	}

	r, g, b, a := c.RGBA()
	if r != 0 || g != 149*0x101 || b != 221*0x101 || a != 0xffff {
		t.Errorf("RGBA() = %d,%d,%d,%d", r, g, b, a)
	}
}

func TestSimpleRNGIntnBounds(t *testing.T) {
	rng := NewSimpleRNG(0)
	for range 1000 {
		if v := rng.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn(3) = %d", v)
		}
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
