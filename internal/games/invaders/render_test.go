package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderPlaying(t *testing.T) {
	g, _, _ := newTestGame(t)
	scr := core.NewScreen(80, 40)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"Score: 0", "HI: 0", "{@}", "/o\\", "<#>", string(BrickChar), string(CannonGlyph)} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if strings.Contains(out, "RESTART") {
		t.Error("restart button should only show in terminal phases")
	}
	if strings.Count(scr.Row(39), LifeIcon) != 3 {
		t.Errorf("bottom row = %q, expected three life icons", scr.Row(39))
	}
}

func TestRenderEnragedMarker(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.enterEnraged()
	scr := core.NewScreen(80, 40)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "ENRAGED") {
		t.Errorf("top row = %q, expected ENRAGED marker", scr.Row(0))
	}
}

func TestRenderOverlay(t *testing.T) {
	tests := []struct {
		phase Phase
		title string
	}{
		{PhaseGameOver, "GAME OVER"},
		{PhaseVictory, "YOU WIN"},
	}

	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			g, _, _ := newTestGame(t)
			g.enterTerminal(tc.phase)
			scr := core.NewScreen(80, 40)
			g.Render(scr)

			out := scr.String()
			for _, want := range []string{tc.title, "RESTART", "High Score: 0"} {
				if !strings.Contains(out, want) {
					t.Errorf("overlay missing %q", want)
				}
			}
		})
	}
}

func TestRenderHidesBlinkingCannon(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.lives = 0 // Keep the HUD free of life icons
	g.cannon.HitTimer = 150

	scr := core.NewScreen(80, 40)
	g.Render(scr)
	if strings.Contains(scr.String(), string(CannonGlyph)) {
		t.Error("cannon should be hidden during an odd blink period")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g, _, _ := newTestGame(t)
	scr := core.NewScreen(0, 0)
	g.Render(scr) // Must not panic
}

func TestProjectionRoundTrip(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.enterTerminal(PhaseGameOver)

	p := g.Projection(80, 40)
	bx, by, bw, bh := p.CellRect(g.RestartButton())
	wx, wy := p.ToWorld(bx+bw/2, by+bh/2)
	if !g.Click(wx, wy) {
		t.Errorf("click at cell (%d,%d) -> world (%v,%v) missed the restart button", bx+bw/2, by+bh/2, wx, wy)
	}
}

func TestFitSprite(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"{@}", 3, "{@}"},
		{"{@}", 2, "{@"},
		{"{@}", 5, " {@} "},
		{"{@}", 4, "{@} "},
	}
	for _, tc := range tests {
		if got := fitSprite(tc.in, tc.w); got != tc.want {
			t.Errorf("fitSprite(%q, %d) = %q, expected %q", tc.in, tc.w, got, tc.want)
		}
	}
}
