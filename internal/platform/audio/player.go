// Package audio synthesizes the game's sound effects and plays them through
// the system speaker. Playback is optional: without an audio device every
// call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Player mixes event sounds into the speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	logger  *log.Logger
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the effect for each event.
func (p *Player) Play(events ...core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	for _, e := range events {
		s := Effect(e, SampleRate)
		if s == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close silences running effects and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.enabled = false
}
