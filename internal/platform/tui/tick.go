// Package tui runs the game in a terminal with Bubble Tea.
// It owns the frame clock, key-hold tracking, mouse hit-testing and
// colored rendering; the simulation itself lives in the games package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameMs caps one simulation step after a stall (suspend, slow terminal).
const MaxFrameMs = 100.0

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the elapsed milliseconds between two frames, clamped
// to [0, MaxFrameMs]. The first frame (zero prev) has no elapsed time.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	ms := float64(now.Sub(prev)) / float64(time.Millisecond)
	return min(max(ms, 0), MaxFrameMs)
}
