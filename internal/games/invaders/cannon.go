package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Cannon is the player-controlled ship at the bottom of the field.
type Cannon struct {
	X, Y float64
	W, H float64

	VX    float64 // Horizontal velocity in pixels per second
	Speed float64

	HitTimer    float64 // Blink countdown after a hit (ms)
	InvulnTimer float64 // Grace countdown during which hits are ignored (ms)

	graceMs float64
	blinkMs float64
}

func newCannon(cfg config.CannonConfig, fieldW, fieldH float64) *Cannon {
	return &Cannon{
		X:       fieldW/2 - cfg.Width/2,
		Y:       fieldH - cfg.Height - cfg.BottomMargin,
		W:       cfg.Width,
		H:       cfg.Height,
		Speed:   cfg.Speed,
		graceMs: cfg.HitGraceMs,
		blinkMs: cfg.BlinkPeriodMs,
	}
}

// MoveLeft sets leftward velocity.
func (c *Cannon) MoveLeft() { c.VX = -c.Speed }

// MoveRight sets rightward velocity.
func (c *Cannon) MoveRight() { c.VX = c.Speed }

// Stop zeroes velocity.
func (c *Cannon) Stop() { c.VX = 0 }

// Update integrates velocity, clamps to [0, boundaryWidth-W] and counts the
// hit timers down toward zero.
func (c *Cannon) Update(dtMs, boundaryWidth float64) {
	c.X += c.VX * (dtMs / 1000)
	c.X = core.ClampF(c.X, 0, math.Max(0, boundaryWidth-c.W))

	c.HitTimer = math.Max(0, c.HitTimer-dtMs)
	c.InvulnTimer = math.Max(0, c.InvulnTimer-dtMs)
}

// MarkAsHit starts the blink and invulnerability windows.
func (c *Cannon) MarkAsHit() {
	c.HitTimer = c.graceMs
	c.InvulnTimer = c.graceMs
}

// CanBeHit reports whether the grace window has elapsed.
func (c *Cannon) CanBeHit() bool {
	return c.InvulnTimer <= 0
}

// Visible reports whether the cannon should be drawn this frame.
// While the hit timer runs, odd blink periods are hidden.
func (c *Cannon) Visible() bool {
	if c.HitTimer <= 0 {
		return true
	}
	return int(math.Floor(c.HitTimer/c.blinkMs))%2 == 0
}

// Rect returns the cannon bounding box.
func (c *Cannon) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}
