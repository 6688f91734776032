package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Brick is one destructible cell of a bunker.
type Brick struct {
	X, Y             float64 // World position
	SpriteX, SpriteY float64 // Sprite sheet sampling offset
	Row, Col         int
	Dead             bool
}

// Bunker is a grid of bricks. Destroyed bricks are removed by Compact.
type Bunker struct {
	X, Y   float64
	BrickW float64
	BrickH float64
	Bricks []*Brick
}

func newBunker(x, y float64, cfg config.BunkerConfig) *Bunker {
	b := &Bunker{
		X:      x,
		Y:      y,
		BrickW: cfg.BrickWidth,
		BrickH: cfg.BrickHeight,
		Bricks: make([]*Brick, 0, cfg.Rows*cfg.Cols),
	}
	for r := range cfg.Rows {
		for c := range cfg.Cols {
			b.Bricks = append(b.Bricks, &Brick{
				X:       x + float64(c)*cfg.BrickWidth,
				Y:       y + float64(r)*cfg.BrickHeight,
				SpriteX: cfg.SpriteX + float64(c)*cfg.BrickWidth,
				SpriteY: cfg.SpriteY + float64(r)*cfg.BrickHeight,
				Row:     r,
				Col:     c,
			})
		}
	}
	return b
}

// layoutBunkers spaces the bunkers evenly across the field width.
func layoutBunkers(cfg config.BunkerConfig, fieldW, fieldH float64) []*Bunker {
	bunkers := make([]*Bunker, 0, cfg.Count)
	spacing := fieldW / float64(cfg.Count+1)
	y := fieldH - cfg.OffsetFromBottom
	for i := 1; i <= cfg.Count; i++ {
		x := math.Floor(spacing*float64(i) - cfg.Width()/2)
		bunkers = append(bunkers, newBunker(x, y, cfg))
	}
	return bunkers
}

// BrickRect returns the bounding box of a brick.
func (b *Bunker) BrickRect(br *Brick) core.Rect {
	return core.NewRect(br.X, br.Y, b.BrickW, b.BrickH)
}

// Absorb kills the first live brick overlapping the bullet, and the bullet
// with it. A bullet destroys at most one brick.
func (b *Bunker) Absorb(bullet *Bullet) bool {
	if bullet.Dead {
		return false
	}
	box := bullet.Rect()
	for _, br := range b.Bricks {
		if br.Dead {
			continue
		}
		if box.Intersects(b.BrickRect(br)) {
			br.Dead = true
			bullet.Kill()
			return true
		}
	}
	return false
}

// Compact drops dead bricks.
func (b *Bunker) Compact() {
	alive := b.Bricks[:0]
	for _, br := range b.Bricks {
		if !br.Dead {
			alive = append(alive, br)
		}
	}
	clear(b.Bricks[len(alive):])
	b.Bricks = alive
}

// Remaining returns the number of live bricks.
func (b *Bunker) Remaining() int {
	n := 0
	for _, br := range b.Bricks {
		if !br.Dead {
			n++
		}
	}
	return n
}
