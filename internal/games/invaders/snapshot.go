package invaders

import "math"

// Snapshot contains the observable game state for determinism testing.
// Positions are flattened into plain slices for stable hashing.
type Snapshot struct {
	Tick         uint64
	Phase        int
	Score        int
	HighScore    int
	Lives        int
	KillStreak   int
	Enraged      bool
	EnragedTimer float64
	ReloadTimer  float64

	CannonX     float64
	HitTimer    float64
	Direction   float64
	ShotElapsed float64
	ShotNext    float64

	// Each alien is 5 values: X, Y, Row, Col, Angry
	AlienData []float64

	// Each bullet is 5 values: X, Y, VX, VY, Owner
	BulletData []float64

	// One value per bunker: live brick count
	BrickCounts []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	alienData := make([]float64, 0, len(g.aliens)*5)
	for _, a := range g.aliens {
		angry := 0.0
		if a.Angry {
			angry = 1
		}
		alienData = append(alienData, a.X, a.Y, float64(a.Row), float64(a.Col), angry)
	}

	bullets := g.Bullets()
	bulletData := make([]float64, 0, len(bullets)*5)
	for _, b := range bullets {
		bulletData = append(bulletData, b.X, b.Y, b.VX, b.VY, float64(b.Owner))
	}

	brickCounts := make([]int, len(g.bunkers))
	for i, b := range g.bunkers {
		brickCounts[i] = b.Remaining()
	}

	return Snapshot{
		Tick:         g.tick,
		Phase:        int(g.phase),
		Score:        g.score,
		HighScore:    g.highScore,
		Lives:        g.lives,
		KillStreak:   g.killStreak,
		Enraged:      g.enraged,
		EnragedTimer: g.enragedTimer,
		ReloadTimer:  g.reloadTimer,
		CannonX:      g.cannon.X,
		HitTimer:     g.cannon.HitTimer,
		Direction:    g.formation.Direction,
		ShotElapsed:  g.shots.elapsed,
		ShotNext:     g.shots.next,
		AlienData:    alienData,
		BulletData:   bulletData,
		BrickCounts:  brickCounts,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	f := math.Float64bits

	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.KillStreak) //#nosec G115 -- hash computation
	if snap.Enraged {
		h = h*31 + 1
	}
	h = h*31 + f(snap.EnragedTimer)
	h = h*31 + f(snap.ReloadTimer)
	h = h*31 + f(snap.CannonX)
	h = h*31 + f(snap.HitTimer)
	h = h*31 + f(snap.Direction)
	h = h*31 + f(snap.ShotElapsed)
	h = h*31 + f(snap.ShotNext)

	for _, v := range snap.AlienData {
		h = h*31 + f(v)
	}

	for _, v := range snap.BulletData {
		h = h*31 + f(v)
	}

	for _, v := range snap.BrickCounts {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
