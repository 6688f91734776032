package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// resolvePlayerHits pairs live player bullets with alive aliens.
func (g *Game) resolvePlayerHits() {
	for _, b := range g.playerBullets {
		if b.Dead {
			continue
		}
		box := b.Rect()
		for _, a := range g.aliens {
			if !a.Alive || !box.Intersects(a.Rect()) {
				continue
			}
			a.Kill()
			b.Kill()
			g.score += g.cfg.Scoring.AlienPoints
			g.killStreak++
			g.emit(core.EventAlienKilled)

			if g.killStreak >= g.cfg.Scoring.StreakThreshold && !g.enraged {
				g.enterEnraged()
			}
			g.angerNeighbors(a.Row, a.Col)
			break
		}
	}
}

// angerNeighbors marks alive aliens beside (row, col) in the same row.
func (g *Game) angerNeighbors(row, col int) {
	for _, a := range g.aliens {
		if !a.Alive || a.Row != row {
			continue
		}
		if core.Abs(a.Col-col) == 1 {
			a.BecomeAngry()
		}
	}
}

func (g *Game) enterEnraged() {
	g.enraged = true
	g.enragedTimer = g.cfg.Scoring.EnragedMs
	g.emit(core.EventEnraged)
}

// resolveEnemyHits pairs live enemy bullets with the cannon. Hits during the
// grace window pass through.
func (g *Game) resolveEnemyHits() {
	cannonBox := g.cannon.Rect()
	for _, b := range g.enemyBullets {
		if b.Dead {
			continue
		}
		if !b.Rect().Intersects(cannonBox) || !g.cannon.CanBeHit() {
			continue
		}
		b.Kill()
		g.lives--
		g.killStreak = 0
		g.cannon.MarkAsHit()
		g.emit(core.EventCannonHit)

		if g.lives <= 0 {
			g.lives = 0
			g.enterTerminal(PhaseGameOver)
		}
	}
}

// resolveBunkerHits lets bricks absorb bullets, player bullets first.
func (g *Game) resolveBunkerHits() {
	for _, group := range [][]*Bullet{g.playerBullets, g.enemyBullets} {
		for _, b := range group {
			for _, bunker := range g.bunkers {
				if bunker.Absorb(b) {
					g.emit(core.EventBrickDestroyed)
					break
				}
			}
		}
	}
}

// cleanup filters dead and off-field entities once all tick logic has run.
func (g *Game) cleanup() {
	keep := func(bullets []*Bullet) []*Bullet {
		out := bullets[:0]
		for _, b := range bullets {
			if !b.Dead && !b.offField(g.fieldH) {
				out = append(out, b)
			}
		}
		clear(bullets[len(out):])
		return out
	}
	g.playerBullets = keep(g.playerBullets)
	g.enemyBullets = keep(g.enemyBullets)

	aliens := g.aliens[:0]
	for _, a := range g.aliens {
		if a.Alive {
			aliens = append(aliens, a)
		}
	}
	clear(g.aliens[len(aliens):])
	g.aliens = aliens

	bunkers := g.bunkers[:0]
	for _, b := range g.bunkers {
		b.Compact()
		if len(b.Bricks) > 0 {
			bunkers = append(bunkers, b)
		}
	}
	clear(g.bunkers[len(bunkers):])
	g.bunkers = bunkers
}
