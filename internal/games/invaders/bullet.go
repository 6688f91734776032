package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota + 1
	OwnerEnemy
)

// String returns the owner name.
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("Owner(%d)", int(o))
	}
}

func (o Owner) valid() bool {
	return o == OwnerPlayer || o == OwnerEnemy
}

// Bullet is a projectile. Velocity is in pixels per millisecond.
type Bullet struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Color  core.Color
	Owner  Owner
	Dead   bool
}

// NewBullet creates a live bullet. It panics on an unknown owner.
func NewBullet(x, y, w, h, vx, vy float64, color core.Color, owner Owner) *Bullet {
	if !owner.valid() {
		panic(fmt.Sprintf("invaders: bullet with invalid owner %v", owner))
	}
	return &Bullet{X: x, Y: y, W: w, H: h, VX: vx, VY: vy, Color: color, Owner: owner}
}

// Update integrates position. Bounds are the game's concern.
func (b *Bullet) Update(dtMs float64) {
	b.X += b.VX * dtMs
	b.Y += b.VY * dtMs
}

// Kill marks the bullet for removal at the end of the tick.
func (b *Bullet) Kill() { b.Dead = true }

// Rect returns the bullet bounding box.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// offField reports whether the bullet has left the vertical play area.
func (b *Bullet) offField(fieldH float64) bool {
	switch b.Owner {
	case OwnerPlayer:
		return b.Y+b.H < 0
	case OwnerEnemy:
		return b.Y > fieldH
	default:
		panic(fmt.Sprintf("invaders: bullet with invalid owner %v", b.Owner))
	}
}
