package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	CannonGlyph      = '▲'
	PlayerBulletChar = '|'
	EnemyBulletChar  = '!'
	BrickChar        = '█'
	LifeIcon         = "▲"
)

// AlienSprites holds the two animation frames per alien kind.
var AlienSprites = [][2]string{
	{"{@}", "}@{"},
	{"/o\\", "\\o/"},
	{"<#>", ">#<"},
}

// AlienColors are the colors per alien kind.
var AlienColors = []core.Color{core.ColorMagenta, core.ColorCyan, core.ColorGreen}

// Projection maps world coordinates onto a character grid.
type Projection struct {
	ScaleX, ScaleY float64 // Cells per world unit
}

// NewProjection fits a fieldW x fieldH world into cols x rows cells.
func NewProjection(fieldW, fieldH float64, cols, rows int) Projection {
	return Projection{ScaleX: float64(cols) / fieldW, ScaleY: float64(rows) / fieldH}
}

// ToCell returns the cell containing the world point.
func (p Projection) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * p.ScaleX)), int(math.Floor(y * p.ScaleY))
}

// ToWorld returns the world point at the center of a cell.
func (p Projection) ToWorld(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / p.ScaleX, (float64(cy) + 0.5) / p.ScaleY
}

// CellRect returns the cell span covered by a world box, at least one cell.
func (p Projection) CellRect(r core.Rect) (x, y, w, h int) {
	x, y = p.ToCell(r.X, r.Y)
	x1 := int(math.Ceil(r.Right()*p.ScaleX)) - 1
	y1 := int(math.Ceil(r.Bottom()*p.ScaleY)) - 1
	return x, y, max(1, x1-x+1), max(1, y1-y+1)
}

// Projection returns the mapping of this game's field onto cols x rows cells.
func (g *Game) Projection(cols, rows int) Projection {
	return NewProjection(g.fieldW, g.fieldH, cols, rows)
}

// Render draws the game into a character screen, scaled to its size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	p := g.Projection(dst.Width(), dst.Height())

	for _, a := range g.aliens {
		if !a.Alive {
			continue
		}
		kind := core.Clamp(a.Kind, 0, len(AlienSprites)-1)
		color := AlienColors[kind%len(AlienColors)]
		if a.Angry {
			color = core.ColorRed
		}
		x, y, w, _ := p.CellRect(a.Rect())
		dst.DrawTextColored(x, y, fitSprite(AlienSprites[kind][a.Frame], w), color)
	}

	for _, b := range g.bunkers {
		for _, br := range b.Bricks {
			if br.Dead {
				continue
			}
			x, y := p.ToCell(br.X, br.Y)
			dst.SetColored(x, y, BrickChar, core.ColorGreen)
		}
	}

	if g.cannon.Visible() {
		x, y, w, _ := p.CellRect(g.cannon.Rect())
		dst.DrawTextColored(x, y, strings.Repeat(string(CannonGlyph), w), core.ColorGreen)
	}

	for _, b := range g.playerBullets {
		x, y := p.ToCell(b.X, b.Y)
		dst.SetColored(x, y, PlayerBulletChar, b.Color)
	}
	for _, b := range g.enemyBullets {
		x, y := p.ToCell(b.X, b.Y)
		dst.SetColored(x, y, EnemyBulletChar, b.Color)
	}

	g.renderHUD(dst)

	if g.phase != PhasePlaying {
		g.renderOverlay(dst, p)
	}
}

// renderHUD draws score, high score, lives and the enraged marker.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("HI: %d", g.highScore), core.ColorWhite)
	if g.enraged {
		label := "ENRAGED"
		dst.DrawTextColored(dst.Width()-len(label)-1, 0, label, core.ColorOrange)
	}

	lives := strings.Repeat(LifeIcon+" ", g.lives)
	dst.DrawTextColored(1, dst.Height()-1, strings.TrimSpace(lives), core.ColorGreen)
}

// renderOverlay draws the end-of-game panel with the restart button.
func (g *Game) renderOverlay(dst *core.Screen, p Projection) {
	title := "GAME OVER"
	if g.phase == PhaseVictory {
		title = "YOU WIN"
	}

	bx, by, bw, bh := p.CellRect(g.RestartButton())
	_, midY := p.ToCell(0, g.fieldH/2)

	top := max(1, midY-4)
	boxW := max(bw+4, len(title)+6)
	boxX := (dst.Width() - boxW) / 2
	boxH := max(by+bh+2-top, 7)
	dst.DrawRect(boxX, top, boxW, boxH, ' ')
	dst.DrawBox(boxX, top, boxW, boxH, core.ColorGray)

	dst.DrawTextCentered(top+1, title, core.ColorGreen)
	dst.DrawTextCentered(top+2, fmt.Sprintf("Score: %d", g.score), core.ColorLavender)
	dst.DrawTextCentered(top+3, fmt.Sprintf("High Score: %d", g.highScore), core.ColorLavender)

	if bh >= 3 {
		dst.DrawBox(bx, by, bw, bh, core.ColorGreen)
		dst.DrawTextCentered(by+bh/2, "RESTART", core.ColorGreen)
	} else {
		dst.DrawTextCentered(by, "[ RESTART ]", core.ColorGreen)
	}
	dst.DrawTextCentered(min(by+bh, dst.Height()-2), "Enter / click to restart", core.ColorGray)
}

// fitSprite crops or pads a sprite to exactly w cells.
func fitSprite(s string, w int) string {
	runes := []rune(s)
	if len(runes) >= w {
		return string(runes[:w])
	}
	pad := w - len(runes)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}
