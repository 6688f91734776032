// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Glyph metrics of basicfont.Face7x13.
const (
	glyphW  = 7
	ascent  = 11
	lineGap = 18
)

// Sounds plays feedback for simulation events.
type Sounds interface {
	Play(events ...core.Event)
}

// Options configures the window frontend. Every field is optional.
type Options struct {
	TickRate int     // Updates per second (default 60)
	Scale    float64 // Window size relative to the field (default 1)
	Scores   *storage.HighScores
	Sounds   Sounds
	Logger   *log.Logger
}

// App adapts an invaders game to ebiten.Game.
type App struct {
	game    *invaders.Game
	sprites *Sprites
	opts    Options
	state   core.GameState
	paused  bool
	lastRun string
}

// NewApp builds the window frontend. Sprites are rasterized here so the
// first Update already has everything it draws.
func NewApp(game *invaders.Game, opts Options) *App {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &App{
		game:    game,
		sprites: LoadSprites(),
		opts:    opts,
		state:   game.State(),
	}
}

// Update advances the simulation by one fixed tick.
func (a *App) Update() error {
	in := pollInput()
	if in.IsPressed(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.IsPressed(core.ActionPause) && a.game.Phase() == invaders.PhasePlaying {
		a.paused = !a.paused
	}
	if a.paused {
		return nil
	}

	// Layout is the field size, so cursor pixels are world units
	if x, y, ok := pollClick(); ok && a.game.Click(float64(x), float64(y)) {
		a.opts.Logger.Debug("restart clicked", "x", x, "y", y)
	}

	result := a.game.Step(1000/float64(ebiten.TPS()), in)
	a.state = result.State
	a.handleEvents(result.Events)
	return nil
}

// handleEvents forwards events to the speaker and records finished runs.
func (a *App) handleEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if a.opts.Sounds != nil {
		a.opts.Sounds.Play(events...)
	}
	for _, e := range events {
		switch e {
		case core.EventVictory, core.EventGameOver:
			a.opts.Logger.Info("game finished", "result", e, "score", a.state.Score, "high", a.state.HighScore)
			if a.opts.Scores != nil {
				a.lastRun = a.opts.Scores.RecordRun(a.state.Score)
			}
		case core.EventRestart:
			a.opts.Logger.Debug("game restarted")
		}
	}
}

// Draw renders the field, HUD and end-of-game overlay.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, al := range a.game.Aliens() {
		if !al.Alive {
			continue
		}
		kind := core.Clamp(al.Kind, 0, len(a.sprites.Aliens)-1)
		tint := invaders.AlienColors[kind%len(invaders.AlienColors)]
		if al.Angry {
			tint = core.ColorRed
		}
		drawSprite(screen, a.sprites.Aliens[kind][al.Frame%2], al.Rect(), rgba(tint))
	}

	for _, b := range a.game.Bunkers() {
		for _, br := range b.Bricks {
			if br.Dead {
				continue
			}
			fillRect(screen, b.BrickRect(br), brickColor)
		}
	}

	if c := a.game.Cannon(); c.Visible() {
		drawSprite(screen, a.sprites.Cannon, c.Rect(), brickColor)
	}

	for _, b := range a.game.Bullets() {
		fillRect(screen, b.Rect(), rgba(b.Color))
	}

	a.drawHUD(screen)

	switch {
	case a.game.Phase() != invaders.PhasePlaying:
		a.drawOverlay(screen)
	case a.paused:
		w, h := a.game.Field()
		drawTextCentered(screen, "PAUSED", w/2, h/2, rgba(core.ColorYellow))
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	w, h := a.game.Field()
	white := rgba(core.ColorWhite)

	drawText(screen, fmt.Sprintf("Score: %d", a.state.Score), 8, 6, white)
	drawTextCentered(screen, fmt.Sprintf("HI: %d", a.state.HighScore), w/2, 6, white)
	if a.state.Enraged {
		label := "ENRAGED"
		drawText(screen, label, w-float64(len(label)*glyphW)-8, 6, rgba(core.ColorOrange))
	}

	cw := a.game.Config().Cannon.Width
	ch := a.game.Config().Cannon.Height
	for i := range a.state.Lives {
		r := core.NewRect(8+float64(i)*(cw+6), h-ch/2-4, cw/2, ch/2)
		drawSprite(screen, a.sprites.Cannon, r, brickColor)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image) {
	w, h := a.game.Field()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	title := "GAME OVER"
	if a.game.Phase() == invaders.PhaseVictory {
		title = "YOU WIN"
	}
	green := rgba(core.ColorGreen)
	lavender := rgba(core.ColorLavender)

	y := h/2 - 3*lineGap
	drawTextCentered(screen, title, w/2, y, green)
	drawTextCentered(screen, fmt.Sprintf("Score: %d", a.state.Score), w/2, y+lineGap, lavender)
	drawTextCentered(screen, fmt.Sprintf("High Score: %d", a.state.HighScore), w/2, y+2*lineGap, lavender)

	btn := a.game.RestartButton()
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 2, green, false)
	drawTextCentered(screen, "RESTART", btn.X+btn.W/2, btn.Y+btn.H/2-ascent/2, green)
	drawTextCentered(screen, "Enter / click to restart", w/2, btn.Bottom()+lineGap/2, rgba(core.ColorGray))
}

// Layout keeps the logical screen at field size; ebiten scales the window.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.Field()
	return int(w), int(h)
}

// LastRun returns the run id recorded for the last finished game.
func (a *App) LastRun() string { return a.lastRun }

func drawSprite(dst, img *ebiten.Image, r core.Rect, c color.RGBA) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(img, op)
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, int(x), int(y)+ascent, c)
}

// drawTextCentered draws s horizontally centered on cx with its top at y.
func drawTextCentered(dst *ebiten.Image, s string, cx, y float64, c color.Color) {
	drawText(dst, s, cx-float64(len(s)*glyphW)/2, y, c)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *invaders.Game, opts Options) error {
	app := NewApp(game, opts)
	w, h := game.Field()

	ebiten.SetWindowSize(int(w*app.opts.Scale), int(h*app.opts.Scale))
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetTPS(app.opts.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
