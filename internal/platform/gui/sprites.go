package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bitmaps are drawn white and tinted per entity at draw time.
// 'X' is an opaque pixel, anything else transparent.

var alienBitmaps = [3][2][]string{
	{
		{
			"..X.....X..",
			"...X...X...",
			"..XXXXXXX..",
			".XX.XXX.XX.",
			"XXXXXXXXXXX",
			"X.XXXXXXX.X",
			"X.X.....X.X",
			"...XX.XX...",
		},
		{
			"..X.....X..",
			"X..X...X..X",
			"X.XXXXXXX.X",
			"XXX.XXX.XXX",
			"XXXXXXXXXXX",
			".XXXXXXXXX.",
			"..X.....X..",
			".X.......X.",
		},
	},
	{
		{
			"...XX...",
			"..XXXX..",
			".XXXXXX.",
			"XX.XX.XX",
			"XXXXXXXX",
			"..X..X..",
			".X.XX.X.",
			"X.X..X.X",
		},
		{
			"...XX...",
			"..XXXX..",
			".XXXXXX.",
			"XX.XX.XX",
			"XXXXXXXX",
			".X.XX.X.",
			"X......X",
			".X....X.",
		},
	},
	{
		{
			"....XXXX....",
			".XXXXXXXXXX.",
			"XXXXXXXXXXXX",
			"XXX..XX..XXX",
			"XXXXXXXXXXXX",
			"...XX..XX...",
			"..XX.XX.XX..",
			"XX........XX",
		},
		{
			"....XXXX....",
			".XXXXXXXXXX.",
			"XXXXXXXXXXXX",
			"XXX..XX..XXX",
			"XXXXXXXXXXXX",
			"..XXX..XXX..",
			".XX..XX..XX.",
			"..XX....XX..",
		},
	},
}

var cannonBitmap = []string{
	".....X.....",
	"....XXX....",
	"....XXX....",
	".XXXXXXXXX.",
	"XXXXXXXXXXX",
	"XXXXXXXXXXX",
	"XXXXXXXXXXX",
	"XXXXXXXXXXX",
}

// bitmapImage rasterizes rows into an RGBA image of color c.
func bitmapImage(rows []string, c color.Color) *image.RGBA {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, len(rows)))
	for y, r := range rows {
		for x := range len(r) {
			if r[x] == 'X' {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// Sprites holds the GPU images, built once before the first frame.
type Sprites struct {
	Aliens [3][2]*ebiten.Image
	Cannon *ebiten.Image
}

// LoadSprites rasterizes every bitmap into an ebiten image.
func LoadSprites() *Sprites {
	s := &Sprites{}
	for kind, frames := range alienBitmaps {
		for f, rows := range frames {
			s.Aliens[kind][f] = ebiten.NewImageFromImage(bitmapImage(rows, color.White))
		}
	}
	s.Cannon = ebiten.NewImageFromImage(bitmapImage(cannonBitmap, color.White))
	return s
}
