package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// stubRand replays queued values and records the call order.
type stubRand struct {
	floats []float64
	ints   []int
	calls  []string
}

func (s *stubRand) Float64() float64 {
	s.calls = append(s.calls, "Float64")
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *stubRand) Intn(n int) int {
	s.calls = append(s.calls, "Intn")
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func newTestGame(t *testing.T) (*Game, *MemStore, *stubRand) {
	t.Helper()
	store := NewMemStore()
	rng := &stubRand{}
	g, err := New(core.DefaultConfig(), config.DefaultInvadersConfig(), store, rng)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, store, rng
}

func findAlien(g *Game, row, col int) *Alien {
	for _, a := range g.aliens {
		if a.Row == row && a.Col == col {
			return a
		}
	}
	return nil
}

// shootAt places a stationary player bullet on top of the alien.
func shootAt(g *Game, a *Alien) *Bullet {
	b := NewBullet(a.X, a.Y, 4, 8, 0, 0, core.ColorWhite, OwnerPlayer)
	g.playerBullets = append(g.playerBullets, b)
	return b
}

// hitCannon places a stationary enemy bullet on top of the cannon.
func hitCannon(g *Game) *Bullet {
	c := g.cannon
	b := NewBullet(c.X, c.Y, 4, 8, 0, 0, core.ColorRed, OwnerEnemy)
	g.enemyBullets = append(g.enemyBullets, b)
	return b
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func countEvent(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}
