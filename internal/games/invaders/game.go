// Package invaders implements the fixed-timestep Space Invaders simulation:
// entities, formation movement and shooting, collision resolution and the
// Playing/Victory/GameOver state machine. Frontends drive it through Step and
// read its state back for drawing.
package invaders

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidConfig is wrapped by New when the game cannot be set up.
var ErrInvalidConfig = errors.New("invaders: invalid configuration")

// Phase is the state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseVictory
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game owns the whole simulation state. It is not safe for concurrent use.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	store   HighScoreStore
	rng     Rand

	fieldW, fieldH float64

	// Entities
	cannon        *Cannon
	playerBullets []*Bullet
	enemyBullets  []*Bullet
	aliens        []*Alien
	bunkers       []*Bunker
	formation     *Formation
	shots         shotClock

	// Aggregate state
	phase        Phase
	score        int
	highScore    int
	lives        int
	level        int
	killStreak   int
	enraged      bool
	enragedTimer float64
	reloadTimer  float64
	tick         uint64

	events []core.Event
}

// New validates the configuration and creates a game in the Playing phase.
// A nil store keeps high scores in memory; a nil rng is seeded from rt.Seed.
func New(rt core.RuntimeConfig, cfg config.InvadersConfig, store HighScoreStore, rng Rand) (*Game, error) {
	if rt.FieldW <= 0 || rt.FieldH <= 0 {
		return nil, fmt.Errorf("%w: field size %dx%d", ErrInvalidConfig, rt.FieldW, rt.FieldH)
	}
	if cfg.Formation.Rows <= 0 || cfg.Formation.Cols <= 0 {
		return nil, fmt.Errorf("%w: empty formation %dx%d", ErrInvalidConfig, cfg.Formation.Rows, cfg.Formation.Cols)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := checkFit(cfg, float64(rt.FieldW), float64(rt.FieldH)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if store == nil {
		store = NewMemStore()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rt.Seed)) //#nosec G404 -- gameplay randomness
	}

	g := &Game{
		runtime: rt,
		cfg:     cfg,
		store:   store,
		rng:     rng,
		fieldW:  float64(rt.FieldW),
		fieldH:  float64(rt.FieldH),
	}
	g.reset()
	return g, nil
}

// checkFit reports a world that does not spawn inside a w x h field.
// A formation that spawns at or past the invasion line would lose on the
// first tick.
func checkFit(cfg config.InvadersConfig, w, h float64) error {
	minX, maxX, bottom := spawnBounds(cfg.Formation)
	if minX < 0 || maxX > w {
		return fmt.Errorf("formation spans [%v, %v], field width is %v", minX, maxX, w)
	}
	if line := h - cfg.Formation.InvasionMargin; bottom >= line {
		return fmt.Errorf("formation bottom %v reaches the invasion line at %v", bottom, line)
	}

	c := cfg.Cannon
	if c.Width > w || h-c.Height-c.BottomMargin < 0 {
		return fmt.Errorf("cannon %vx%v with bottom margin %v does not fit a %vx%v field", c.Width, c.Height, c.BottomMargin, w, h)
	}

	b := cfg.Bunkers
	if b.Count == 0 {
		return nil
	}
	bunkers := layoutBunkers(b, w, h)
	first, last := bunkers[0], bunkers[len(bunkers)-1]
	top := h - b.OffsetFromBottom
	if first.X < 0 || last.X+b.Width() > w || top < 0 || top+float64(b.Rows)*b.BrickHeight > h {
		return fmt.Errorf("bunker row at y=%v spanning [%v, %v] does not fit a %vx%v field", top, first.X, last.X+b.Width(), w, h)
	}
	return nil
}

// reset reinitializes every entity and counter. The high score is re-read
// from the store and never decreases.
func (g *Game) reset() {
	g.cannon = newCannon(g.cfg.Cannon, g.fieldW, g.fieldH)
	g.aliens = spawnFormation(g.cfg.Formation)
	g.bunkers = layoutBunkers(g.cfg.Bunkers, g.fieldW, g.fieldH)
	g.playerBullets = nil
	g.enemyBullets = nil
	if g.formation == nil {
		g.formation = newFormation(g.cfg.Formation)
	}
	g.formation.Reset()

	if hs, ok := g.store.Get(HighScoreKey); ok && hs > g.highScore {
		g.highScore = hs
	}

	g.phase = PhasePlaying
	g.score = 0
	g.lives = g.cfg.Cannon.Lives
	g.level = 1
	g.killStreak = 0
	g.enraged = false
	g.enragedTimer = 0
	g.reloadTimer = 0
	g.tick = 0

	g.shots = shotClock{}
	g.shots.next = g.drawShotInterval()
}

// Step advances the simulation by dtMs milliseconds.
// In a terminal phase only the Confirm edge is polled.
func (g *Game) Step(dtMs float64, in core.Input) core.StepResult {
	if in == nil {
		in = core.InputFrame{}
	}
	if dtMs < 0 || math.IsNaN(dtMs) {
		dtMs = 0
	}

	if g.phase != PhasePlaying {
		if in.IsPressed(core.ActionConfirm) {
			g.Restart()
		}
		return g.result()
	}

	g.tick++
	g.handleInput(dtMs, in)

	g.cannon.Update(dtMs, g.fieldW)
	for _, b := range g.playerBullets {
		b.Update(dtMs)
	}
	for _, b := range g.enemyBullets {
		b.Update(dtMs)
	}
	for _, a := range g.aliens {
		a.Update(dtMs)
	}

	g.formation.Move(g.aliens, dtMs, g.fieldW)
	g.updateAlienShooting(dtMs)

	g.resolvePlayerHits()
	g.resolveEnemyHits()
	g.resolveBunkerHits()

	g.cleanup()

	if g.phase == PhasePlaying {
		g.checkEnd()
	}
	if g.phase == PhasePlaying && g.enraged {
		g.enragedTimer -= dtMs
		if g.enragedTimer <= 0 {
			g.enraged = false
			g.enragedTimer = 0
		}
	}

	return g.result()
}

// handleInput applies movement, the reload countdown and firing.
// Left takes priority over Right.
func (g *Game) handleInput(dtMs float64, in core.Input) {
	switch {
	case in.IsDown(core.ActionLeft):
		g.cannon.MoveLeft()
	case in.IsDown(core.ActionRight):
		g.cannon.MoveRight()
	default:
		g.cannon.Stop()
	}

	if g.reloadTimer > 0 {
		g.reloadTimer = math.Max(0, g.reloadTimer-dtMs)
	}
	if in.IsPressed(core.ActionFire) && g.reloadTimer == 0 {
		pb := g.cfg.PlayerBullet
		g.playerBullets = append(g.playerBullets, NewBullet(
			g.cannon.X+g.cannon.W/2, g.cannon.Y,
			pb.Width, pb.Height, 0, -pb.Speed,
			core.ColorWhite, OwnerPlayer,
		))
		g.reloadTimer = g.cfg.Cannon.ReloadMs
		g.emit(core.EventPlayerShot)
	}
}

// checkEnd evaluates victory and invasion after the tick's resolution.
func (g *Game) checkEnd() {
	if countAlive(g.aliens) == 0 {
		g.enterTerminal(PhaseVictory)
		return
	}
	threshold := g.fieldH - g.cfg.Formation.InvasionMargin
	for _, a := range g.aliens {
		if a.Alive && a.Y+a.H >= threshold {
			g.enterTerminal(PhaseGameOver)
			return
		}
	}
}

// enterTerminal switches to a terminal phase once and writes a new best
// score through to the store.
func (g *Game) enterTerminal(p Phase) {
	if g.phase != PhasePlaying {
		return
	}
	g.phase = p
	if g.score > g.highScore {
		g.highScore = g.score
		g.store.Set(HighScoreKey, g.highScore)
	}
	if p == PhaseVictory {
		g.emit(core.EventVictory)
	} else {
		g.emit(core.EventGameOver)
	}
}

// Restart fully reinitializes the game from a terminal phase.
// It returns false and does nothing while Playing.
func (g *Game) Restart() bool {
	if g.phase == PhasePlaying {
		return false
	}
	g.reset()
	g.emit(core.EventRestart)
	return true
}

// Click activates the restart button when (x, y) in world coordinates lies
// inside it during a terminal phase.
func (g *Game) Click(x, y float64) bool {
	if g.phase == PhasePlaying {
		return false
	}
	if !g.RestartButton().Contains(x, y) {
		return false
	}
	return g.Restart()
}

// RestartButton returns the on-field restart control in world coordinates.
func (g *Game) RestartButton() core.Rect {
	l := g.cfg.Layout
	return core.NewRect(
		(g.fieldW-l.RestartButtonWidth)/2,
		g.fieldH/2+l.RestartButtonOffsetY,
		l.RestartButtonWidth,
		l.RestartButtonHeight,
	)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result drains pending events into a StepResult.
func (g *Game) result() core.StepResult {
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the aggregate state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		Level:     g.level,
		Enraged:   g.enraged,
		GameOver:  g.phase == PhaseGameOver,
		Victory:   g.phase == PhaseVictory,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase { return g.phase }

// Cannon returns the player's cannon.
func (g *Game) Cannon() *Cannon { return g.cannon }

// PlayerBullets returns the live player bullets.
func (g *Game) PlayerBullets() []*Bullet { return g.playerBullets }

// EnemyBullets returns the live alien bullets.
func (g *Game) EnemyBullets() []*Bullet { return g.enemyBullets }

// Bullets returns all live bullets, player bullets first.
func (g *Game) Bullets() []*Bullet {
	out := make([]*Bullet, 0, len(g.playerBullets)+len(g.enemyBullets))
	out = append(out, g.playerBullets...)
	return append(out, g.enemyBullets...)
}

// Aliens returns the alive aliens.
func (g *Game) Aliens() []*Alien { return g.aliens }

// Bunkers returns bunkers that still have bricks.
func (g *Game) Bunkers() []*Bunker { return g.bunkers }

// Formation returns the formation movement state.
func (g *Game) Formation() *Formation { return g.formation }

// KillStreak returns consecutive kills since the cannon was last hit.
func (g *Game) KillStreak() int { return g.killStreak }

// EnragedTimer returns the remaining enraged time in milliseconds.
func (g *Game) EnragedTimer() float64 { return g.enragedTimer }

// Field returns the play field size in world units.
func (g *Game) Field() (float64, float64) { return g.fieldW, g.fieldH }

// Config returns the gameplay tuning in use.
func (g *Game) Config() config.InvadersConfig { return g.cfg }
