package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Per-effect loudness, relative to the master volume.
const (
	volumeShot   = 0.25
	volumeAlien  = 0.15
	volumeKill   = 0.4
	volumeHit    = 0.5
	volumeBrick  = 0.15
	volumeJingle = 0.35
)

// Effect builds a fresh streamer for a game event.
// Returns nil for events that make no sound.
func Effect(e core.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventPlayerShot:
		return newVolume(tone(880, 60*time.Millisecond, WaveSquare, rate), volumeShot)
	case core.EventAlienShot:
		return newVolume(tone(220, 50*time.Millisecond, WaveSaw, rate), volumeAlien)
	case core.EventAlienKilled:
		return newVolume(tone(0, 120*time.Millisecond, WaveNoise, rate), volumeKill)
	case core.EventCannonHit:
		return newVolume(tone(110, 300*time.Millisecond, WaveSaw, rate), volumeHit)
	case core.EventBrickDestroyed:
		return newVolume(tone(0, 40*time.Millisecond, WaveNoise, rate), volumeBrick)
	case core.EventEnraged:
		return newVolume(melody([]float64{440, 660, 880}, 80*time.Millisecond, WaveSquare, rate), volumeJingle)
	case core.EventVictory:
		return newVolume(melody([]float64{523.25, 659.25, 783.99, 1046.5}, 120*time.Millisecond, WaveSine, rate), volumeJingle)
	case core.EventGameOver:
		return newVolume(melody([]float64{392, 329.63, 261.63}, 200*time.Millisecond, WaveSaw, rate), volumeJingle)
	default:
		return nil
	}
}
