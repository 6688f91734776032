package audio

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// drain streams s to exhaustion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	if n != 100 {
		t.Errorf("samples = %d, expected 100", n)
	}
	if peak > 1 {
		t.Errorf("peak = %v, expected <= 1", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v, expected nil", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("Stream() = (%d, %v), expected (64, true)", n, ok)
	}
	for i := range n {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Errorf("sample %d = %v, expected +-1", i, v)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 50*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := s.Stream(samples)
	if n != 100 {
		t.Fatalf("samples = %d, expected 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silent attack start", samples[0][0])
	}
	if samples[20][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", samples[20][0])
	}
	if math.Abs(samples[99][0]) >= math.Abs(samples[60][0]) {
		t.Errorf("release should fade: sample 60 = %v, sample 99 = %v", samples[60][0], samples[99][0])
	}
}

func TestEffectsPerEvent(t *testing.T) {
	tests := []struct {
		event  core.Event
		silent bool
	}{
		{core.EventPlayerShot, false},
		{core.EventAlienShot, false},
		{core.EventAlienKilled, false},
		{core.EventCannonHit, false},
		{core.EventBrickDestroyed, false},
		{core.EventEnraged, false},
		{core.EventVictory, false},
		{core.EventGameOver, false},
		{core.EventRestart, true},
	}

	for _, tc := range tests {
		t.Run(tc.event.String(), func(t *testing.T) {
			s := Effect(tc.event, SampleRate)
			if tc.silent {
				if s != nil {
					t.Error("Effect() should be nil for a silent event")
				}
				return
			}
			if s == nil {
				t.Fatal("Effect() = nil, expected a sound")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if n > SampleRate.N(time.Second) {
				t.Errorf("effect lasts %d samples, expected under a second", n)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(log.New(&bytes.Buffer{}))
	if p.Enabled() {
		t.Error("new player should be disabled")
	}
	p.Play(core.EventPlayerShot, core.EventVictory) // Must not touch the speaker
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected 0", p.mixer.Len())
	}
}
