package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
)

func TestRenderScreenPlainProfile(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Bricks")
	s.SetColored(3, 1, '●', core.RGB{R: 200, G: 10, B: 10})
	s.FillRect(core.NewRect(5, 2, 4, 1), '█', core.ColorBrick)

	// A non-terminal writer has no color profile, so styling is a no-op.
	got := RenderScreen(s, lipgloss.NewRenderer(io.Discard))

	if got != s.String() {
		t.Errorf("RenderScreen =\n%q\nwant\n%q", got, s.String())
	}
}

func TestRenderScreenNilRenderer(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ok")

	if out := RenderScreen(s, nil); out == "" {
		t.Error("RenderScreen with nil renderer returned nothing")
	}
}
