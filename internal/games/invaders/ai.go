package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rand is the random source used for shot timing and shooter selection.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// shotClock tracks time until the next alien shot.
type shotClock struct {
	elapsed float64
	next    float64
}

// shotProfile returns projectile speed and color for a shooter.
//
//	calm / normal   red     straight down  CalmSpeed
//	calm / enraged  yellow  straight down  EnragedSpeed
//	angry / normal  yellow  aimed          CalmSpeed * AngryMultiplier
//	angry / enraged orange  aimed          EnragedSpeed * AngryMultiplier
func shotProfile(ai config.AIConfig, angry, enraged bool) (float64, core.Color) {
	speed := ai.CalmSpeed
	if enraged {
		speed = ai.EnragedSpeed
	}

	switch {
	case angry && enraged:
		return speed * ai.AngryMultiplier, core.ColorOrange
	case angry:
		return speed * ai.AngryMultiplier, core.ColorYellow
	case enraged:
		return speed, core.ColorYellow
	default:
		return speed, core.ColorRed
	}
}

// aimAt returns a velocity of the given speed pointing from (x, y) to (tx, ty).
// A zero-length direction is treated as unit length.
func aimAt(x, y, tx, ty, speed float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return dx / dist * speed, dy / dist * speed
}

// drawShotInterval picks a fresh interval in [min, max), halved while enraged.
func (g *Game) drawShotInterval() float64 {
	ai := g.cfg.AI
	interval := ai.MinIntervalMs + g.rng.Float64()*(ai.MaxIntervalMs-ai.MinIntervalMs)
	if g.enraged {
		interval /= 2
	}
	return interval
}

// updateAlienShooting fires one shot from a front-row alien whenever the shot
// interval expires. The interval is drawn before the shooter.
func (g *Game) updateAlienShooting(dtMs float64) {
	g.shots.elapsed += dtMs
	if g.shots.elapsed < g.shots.next {
		return
	}
	g.shots.elapsed = 0
	g.shots.next = g.drawShotInterval()

	candidates := FrontRow(g.aliens)
	if len(candidates) == 0 {
		return
	}
	shooter := candidates[g.rng.Intn(len(candidates))]
	if shooter.Angry {
		g.shots.next /= 2
	}

	bx := shooter.X + shooter.W/2
	by := shooter.Y + shooter.H
	speed, color := shotProfile(g.cfg.AI, shooter.Angry, g.enraged)

	vx, vy := 0.0, speed
	if shooter.Angry {
		cx, cy := g.cannon.Rect().Center()
		vx, vy = aimAt(bx, by, cx, cy, speed)
	}

	g.enemyBullets = append(g.enemyBullets,
		NewBullet(bx, by, g.cfg.AI.BulletWidth, g.cfg.AI.BulletHeight, vx, vy, color, OwnerEnemy))
	g.emit(core.EventAlienShot)
}
