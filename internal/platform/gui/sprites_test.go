package gui

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestBitmapImage(t *testing.T) {
	img := bitmapImage([]string{"X.", ".X", "X"}, color.White)

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, expected 2x3", b)
	}
	tests := []struct {
		x, y   int
		opaque bool
	}{
		{0, 0, true},
		{1, 0, false},
		{1, 1, true},
		{0, 2, true},
		{1, 2, false},
	}
	for _, tc := range tests {
		_, _, _, a := img.At(tc.x, tc.y).RGBA()
		if (a != 0) != tc.opaque {
			t.Errorf("pixel (%d,%d) opaque = %v, expected %v", tc.x, tc.y, a != 0, tc.opaque)
		}
	}
}

// Sprites are scaled to the alien boxes, so each frame pair must share a size
// and keep the aspect of its configured box.
func TestAlienBitmapsMatchTypes(t *testing.T) {
	types := config.DefaultInvadersConfig().Formation.Types
	if len(alienBitmaps) != len(types) {
		t.Fatalf("%d bitmaps for %d alien types", len(alienBitmaps), len(types))
	}

	for kind, frames := range alienBitmaps {
		a := bitmapImage(frames[0], color.White).Bounds()
		b := bitmapImage(frames[1], color.White).Bounds()
		if a != b {
			t.Errorf("kind %d frames differ in size: %v vs %v", kind, a, b)
		}
		scaleX := types[kind].Width / float64(a.Dx())
		scaleY := types[kind].Height / float64(a.Dy())
		if scaleX != scaleY {
			t.Errorf("kind %d scales %vx%v, expected square pixels", kind, scaleX, scaleY)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing %v", c)
		}
	}
	if rgba(core.Color(200)) != palette[core.ColorWhite] {
		t.Error("unknown colors should fall back to white")
	}
}
