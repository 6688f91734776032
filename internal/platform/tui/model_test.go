package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// recordingSounds remembers every event it was asked to play.
type recordingSounds struct {
	events []core.Event
}

func (r *recordingSounds) Play(events ...core.Event) {
	r.events = append(r.events, events...)
}

func hashOf(g *invaders.Game) uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}

// fakeClock is advanced by the tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, opts Options) (Model, *fakeClock) {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 7
	game, err := invaders.New(rt, config.DefaultInvadersConfig(), invaders.NewMemStore(), nil)
	if err != nil {
		t.Fatalf("invaders.New() failed: %v", err)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(&bytes.Buffer{})
	}
	m := NewModel(game, 80, 40, opts)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	m.clock = clock.Now
	return m, clock
}

// send feeds one message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

// tick advances the clock by d and delivers a tick.
func tick(t *testing.T, m Model, clock *fakeClock, d time.Duration) Model {
	t.Helper()
	clock.now = clock.now.Add(d)
	m, _ = send(t, m, TickMsg(clock.now))
	return m
}

func TestModelFireSpawnsBullet(t *testing.T) {
	sounds := &recordingSounds{}
	m, clock := newTestModel(t, Options{Sounds: sounds})

	m = tick(t, m, clock, 0)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, clock, 16*time.Millisecond)

	if n := len(m.game.PlayerBullets()); n != 1 {
		t.Fatalf("player bullets = %d, expected 1", n)
	}
	if len(sounds.events) == 0 || sounds.events[0] != core.EventPlayerShot {
		t.Errorf("sounds = %v, expected PlayerShot first", sounds.events)
	}
}

func TestModelHoldMovesCannon(t *testing.T) {
	m, clock := newTestModel(t, Options{})
	m = tick(t, m, clock, 0)
	start := m.game.Cannon().X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, clock, 50*time.Millisecond)
	moved := m.game.Cannon().X
	if moved >= start {
		t.Fatalf("cannon X = %v, expected left of %v", moved, start)
	}

	// No autorepeat arrives, so the key is released after the hold window
	m = tick(t, m, clock, 200*time.Millisecond)
	x := m.game.Cannon().X
	m = tick(t, m, clock, 50*time.Millisecond)
	if m.game.Cannon().X != x {
		t.Errorf("cannon X = %v after release, expected it to stay at %v", m.game.Cannon().X, x)
	}
}

func TestModelPauseSuspendsStepping(t *testing.T) {
	m, clock := newTestModel(t, Options{})
	m = tick(t, m, clock, 16*time.Millisecond)

	m, _ = send(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p should pause the game")
	}
	before := hashOf(m.game)
	for range 10 {
		m = tick(t, m, clock, 16*time.Millisecond)
	}
	if hashOf(m.game) != before {
		t.Error("simulation advanced while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show PAUSED")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Paused() {
		t.Fatal("esc should resume the game")
	}
	m = tick(t, m, clock, 16*time.Millisecond)
	if hashOf(m.game) == before {
		t.Error("simulation should advance after resuming")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelClickWhilePlayingIgnored(t *testing.T) {
	sounds := &recordingSounds{}
	m, clock := newTestModel(t, Options{Sounds: sounds})

	p := m.game.Projection(80, 40)
	btn := m.game.RestartButton()
	cx, cy := p.ToCell(btn.X+btn.W/2, btn.Y+btn.H/2)
	m, _ = send(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, clock, 16*time.Millisecond)

	for _, e := range sounds.events {
		if e == core.EventRestart {
			t.Fatal("click during play should not restart")
		}
	}
	if m.game.Phase() != invaders.PhasePlaying {
		t.Errorf("phase = %v, expected playing", m.game.Phase())
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, expected 30", lines)
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	scores := storage.NewHighScores(store, invaders.HighScoreKey, log.New(&bytes.Buffer{}))
	m, _ := newTestModel(t, Options{Scores: scores})

	m.state = core.GameState{Score: 40, GameOver: true}
	m.handleEvents([]core.Event{core.EventGameOver})

	if m.LastRun() == "" {
		t.Fatal("finished game should record a run")
	}
	runs, err := store.TopRuns(invaders.HighScoreKey, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 40 || runs[0].RunID != m.LastRun() {
		t.Errorf("runs = %+v, expected one run of 40", runs)
	}
}
