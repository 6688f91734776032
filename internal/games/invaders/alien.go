package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Alien is one member of the formation. Row and Col are fixed at spawn.
type Alien struct {
	X, Y float64
	W, H float64
	Row  int
	Col  int
	Kind int // Index into the configured alien types

	Alive bool
	Frame int // Animation frame, 0 or 1

	Angry      bool
	AngerTimer float64

	animTimer float64
	animMs    float64
	angerMs   float64
}

func newAlien(x, y, w, h float64, row, col, kind int, animMs, angerMs float64) *Alien {
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("invaders: alien at invalid grid position (%d,%d)", row, col))
	}
	return &Alien{
		X: x, Y: y, W: w, H: h,
		Row: row, Col: col, Kind: kind,
		Alive:   true,
		animMs:  animMs,
		angerMs: angerMs,
	}
}

// Update advances animation and the anger countdown. Dead aliens are skipped.
func (a *Alien) Update(dtMs float64) {
	if !a.Alive {
		return
	}

	a.animTimer += dtMs
	if a.animTimer >= a.animMs {
		a.Frame = 1 - a.Frame
		a.animTimer = 0
	}

	if a.Angry {
		a.AngerTimer -= dtMs
		if a.AngerTimer <= 0 {
			a.Angry = false
			a.AngerTimer = 0
		}
	}
}

// Kill marks the alien dead.
func (a *Alien) Kill() { a.Alive = false }

// BecomeAngry starts (or restarts) the anger countdown.
func (a *Alien) BecomeAngry() {
	a.Angry = true
	a.AngerTimer = a.angerMs
}

// Rect returns the alien bounding box.
func (a *Alien) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}
