package invaders

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Formation moves the alien block as one unit.
type Formation struct {
	Direction float64 // +1 right, -1 left
	Speed     float64 // Pixels per second
	Drop      float64

	baseSpeed float64
}

func newFormation(cfg config.FormationConfig) *Formation {
	f := &Formation{Drop: cfg.DropDistance, baseSpeed: cfg.Speed}
	f.Reset()
	return f
}

// Reset restores the initial direction and speed.
func (f *Formation) Reset() {
	f.Direction = 1
	f.Speed = f.baseSpeed
}

// spawnFormation builds the alien grid row by row.
func spawnFormation(cfg config.FormationConfig) []*Alien {
	aliens := make([]*Alien, 0, cfg.Rows*cfg.Cols)
	for r := range cfg.Rows {
		t := cfg.TypeForRow(r)
		kind := r / max(cfg.RowsPerType, 1)
		kind = min(kind, len(cfg.Types)-1)
		for c := range cfg.Cols {
			x := cfg.OffsetX + float64(c)*cfg.HGap + t.XShift
			y := cfg.OffsetY + float64(r)*cfg.VGap
			aliens = append(aliens, newAlien(x, y, t.Width, t.Height, r, c, kind, cfg.AnimationMs, cfg.AngerMs))
		}
	}
	return aliens
}

// spawnBounds returns the box spawnFormation fills without building it.
func spawnBounds(cfg config.FormationConfig) (minX, maxX, bottom float64) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	right := cfg.OffsetX + float64(cfg.Cols-1)*cfg.HGap
	for r := range cfg.Rows {
		t := cfg.TypeForRow(r)
		minX = math.Min(minX, cfg.OffsetX+t.XShift)
		maxX = math.Max(maxX, right+t.XShift+t.Width)
	}
	last := cfg.TypeForRow(cfg.Rows - 1)
	bottom = cfg.OffsetY + float64(cfg.Rows-1)*cfg.VGap + last.Height
	return minX, maxX, bottom
}

// Extent returns the horizontal envelope of the alive aliens.
// ok is false when none are alive.
func Extent(aliens []*Alien) (minX, maxX float64, ok bool) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		ok = true
		minX = math.Min(minX, a.X)
		maxX = math.Max(maxX, a.X+a.W)
	}
	if !ok {
		return 0, 0, false
	}
	return minX, maxX, true
}

// Move displaces the alive aliens horizontally. If the new envelope would
// leave [0, fieldW] the displacement is undone, the direction flips and every
// alive alien drops instead. Reports whether a bounce happened.
func (f *Formation) Move(aliens []*Alien, dtMs, fieldW float64) bool {
	dx := f.Speed * f.Direction * (dtMs / 1000)
	for _, a := range aliens {
		if a.Alive {
			a.X += dx
		}
	}

	minX, maxX, ok := Extent(aliens)
	if !ok || (minX >= 0 && maxX <= fieldW) {
		return false
	}

	f.Direction = -f.Direction
	for _, a := range aliens {
		if a.Alive {
			a.X -= dx
			a.Y += f.Drop
		}
	}
	return true
}

// FrontRow returns, for each column, the alive alien with the highest row
// index. The result is ordered by column.
func FrontRow(aliens []*Alien) []*Alien {
	front := make(map[int]*Alien)
	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		if cur, ok := front[a.Col]; !ok || a.Row > cur.Row {
			front[a.Col] = a
		}
	}

	out := make([]*Alien, 0, len(front))
	for _, a := range front {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Col < out[j].Col })
	return out
}

// countAlive counts living aliens.
func countAlive(aliens []*Alien) int {
	n := 0
	for _, a := range aliens {
		if a.Alive {
			n++
		}
	}
	return n
}
