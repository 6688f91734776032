package invaders

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestShotProfiles(t *testing.T) {
	tests := []struct {
		name      string
		angry     bool
		enraged   bool
		speed     float64
		color     core.Color
		aimed     bool
		nextShot  float64
		shotCount int
	}{
		{"calm normal", false, false, 0.1, core.ColorRed, false, 2000, 1},
		{"calm enraged", false, true, 0.2, core.ColorYellow, false, 1000, 1},
		{"angry normal", true, false, 0.15, core.ColorYellow, true, 1000, 1},
		{"angry enraged", true, true, 0.3, core.ColorOrange, true, 500, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _, rng := newTestGame(t)
			rng.floats = []float64{0.5}
			rng.ints = []int{0}

			shooter := findAlien(g, 4, 0)
			if tc.angry {
				shooter.BecomeAngry()
			}
			g.enraged = tc.enraged
			g.shots.elapsed = 0
			g.shots.next = 10

			g.updateAlienShooting(10)

			if len(g.enemyBullets) != tc.shotCount {
				t.Fatalf("len(enemyBullets) = %d, expected %d", len(g.enemyBullets), tc.shotCount)
			}
			b := g.enemyBullets[0]

			if b.Color != tc.color {
				t.Errorf("Color = %v, expected %v", b.Color, tc.color)
			}
			if got := math.Hypot(b.VX, b.VY); math.Abs(got-tc.speed) > 1e-9 {
				t.Errorf("speed = %v, expected %v", got, tc.speed)
			}
			if math.Abs(g.shots.next-tc.nextShot) > 1e-9 {
				t.Errorf("next interval = %v, expected %v", g.shots.next, tc.nextShot)
			}

			// Shooter (4,0) spawns its shot at (62, 186).
			if b.X != 62 || b.Y != 186 {
				t.Errorf("origin = (%v, %v), expected (62, 186)", b.X, b.Y)
			}

			if tc.aimed {
				// Cannon center is (300, 572).
				dx, dy := 300-62.0, 572-186.0
				if b.VX <= 0 || math.Abs(b.VX*dy-b.VY*dx) > 1e-9 {
					t.Errorf("velocity (%v, %v) does not point at the cannon", b.VX, b.VY)
				}
			} else if b.VX != 0 || b.VY <= 0 {
				t.Errorf("velocity (%v, %v), expected straight down", b.VX, b.VY)
			}
			if b.Owner != OwnerEnemy || b.W != 4 || b.H != 8 {
				t.Errorf("bullet = %+v, expected 4x8 enemy bullet", b)
			}
		})
	}
}

func TestShotDrawOrder(t *testing.T) {
	g, _, rng := newTestGame(t)
	rng.calls = nil
	rng.floats = []float64{0}
	rng.ints = []int{5}
	g.shots.next = 0

	g.updateAlienShooting(1)

	if len(rng.calls) != 2 || rng.calls[0] != "Float64" || rng.calls[1] != "Intn" {
		t.Errorf("random calls = %v, expected [Float64 Intn]", rng.calls)
	}
	if g.shots.next != 1000 {
		t.Errorf("next interval = %v, expected 1000", g.shots.next)
	}
	if g.shots.elapsed != 0 {
		t.Errorf("elapsed = %v, expected reset to 0", g.shots.elapsed)
	}
	if len(g.enemyBullets) != 1 || g.enemyBullets[0].X != findAlien(g, 4, 5).X+12 {
		t.Error("shot should come from the sixth front-row alien")
	}
}

func TestShotWaitsForInterval(t *testing.T) {
	g, _, rng := newTestGame(t)
	rng.calls = nil
	g.shots.next = 1000

	g.updateAlienShooting(999)
	if len(g.enemyBullets) != 0 || len(rng.calls) != 0 {
		t.Error("no shot should fire before the interval elapses")
	}

	g.updateAlienShooting(1)
	if len(g.enemyBullets) != 1 {
		t.Errorf("len(enemyBullets) = %d, expected 1", len(g.enemyBullets))
	}
}

func TestShotWithoutCandidates(t *testing.T) {
	g, _, rng := newTestGame(t)
	g.aliens = nil
	rng.calls = nil
	g.shots.next = 0

	g.updateAlienShooting(1)

	if len(g.enemyBullets) != 0 {
		t.Error("empty formation should not fire")
	}
	for _, c := range rng.calls {
		if c == "Intn" {
			t.Error("shooter should not be drawn without candidates")
		}
	}
}

func TestShotEvent(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.shots.next = 0
	g.updateAlienShooting(1)
	if !hasEvent(g.result().Events, core.EventAlienShot) {
		t.Error("alien shot should emit EventAlienShot")
	}
}

func TestAimAtZeroDistance(t *testing.T) {
	vx, vy := aimAt(10, 10, 10, 10, 0.2)
	if vx != 0 || vy != 0 {
		t.Errorf("aimAt() on the target = (%v, %v), expected (0, 0)", vx, vy)
	}
}
