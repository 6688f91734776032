package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Sounds plays feedback for simulation events.
type Sounds interface {
	Play(events ...core.Event)
}

// Options configures the terminal frontend. Every field is optional.
type Options struct {
	TickRate   int                 // Frames per second (default 60)
	HoldWindow time.Duration       // Key hold window (default DefaultHoldWindow)
	Scores     *storage.HighScores // Run history; nil disables recording
	Sounds     Sounds              // Event sounds; nil is silent
	Logger     *log.Logger
}

// Model is the Bubble Tea model driving one invaders game.
type Model struct {
	game     *invaders.Game
	screen   *core.Screen
	keys     *KeyState
	opts     Options
	clock    func() time.Time
	lastTick time.Time
	state    core.GameState
	paused   bool
	quitting bool
	lastRun  string // Run id of the most recent recorded game
}

// NewModel creates a model rendering into a width x height terminal.
func NewModel(game *invaders.Game, width, height int, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return Model{
		game:   game,
		screen: core.NewScreen(width, height),
		keys:   NewKeyState(opts.HoldWindow),
		opts:   opts,
		clock:  time.Now,
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		// Terminal screens already wait for a restart
		if m.game.Phase() == invaders.PhasePlaying {
			m.paused = !m.paused
			m.keys.Reset()
		}
	default:
		if !m.paused {
			m.keys.Observe(action, m.clock())
		}
	}

	return m, nil
}

// handleMouse maps a left click onto the field and offers it to the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.screen.Width() == 0 || m.screen.Height() == 0 {
		return m, nil
	}
	p := m.game.Projection(m.screen.Width(), m.screen.Height())
	x, y := p.ToWorld(msg.X, msg.Y)
	if m.game.Click(x, y) {
		m.opts.Logger.Debug("restart clicked", "x", x, "y", y)
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.paused {
		return m, tickCmd(m.opts.TickRate)
	}

	result := m.game.Step(dt, m.keys.Frame(now))
	m.state = result.State
	m.handleEvents(result.Events)

	return m, tickCmd(m.opts.TickRate)
}

// handleEvents forwards events to the speaker and records finished runs.
func (m *Model) handleEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if m.opts.Sounds != nil {
		m.opts.Sounds.Play(events...)
	}
	for _, e := range events {
		switch e {
		case core.EventVictory, core.EventGameOver:
			m.opts.Logger.Info("game finished", "result", e, "score", m.state.Score, "high", m.state.HighScore)
			if m.opts.Scores != nil {
				m.lastRun = m.opts.Scores.RecordRun(m.state.Score)
			}
		case core.EventRestart:
			m.opts.Logger.Debug("game restarted")
		}
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("invaders_%s.txt", m.clock().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorYellow)
		m.screen.DrawTextCentered(m.screen.Height()/2+1, " P / Esc to resume ", core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState { return m.state }

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool { return m.paused }

// LastRun returns the run id recorded for the last finished game.
func (m Model) LastRun() string { return m.lastRun }

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *invaders.Game, width, height int, opts Options) error {
	model := NewModel(game, width, height, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
