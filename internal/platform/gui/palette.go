package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	brickColor      = color.RGBA{0x33, 0xff, 0x33, 0xff}
)

// palette maps core colors to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:  {0xff, 0xff, 0xff, 0xff},
	core.ColorWhite:    {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:      {0xff, 0x30, 0x30, 0xff},
	core.ColorYellow:   {0xff, 0xee, 0x33, 0xff},
	core.ColorOrange:   {0xff, 0x99, 0x00, 0xff},
	core.ColorGreen:    {0x33, 0xff, 0x33, 0xff},
	core.ColorCyan:     {0x33, 0xdd, 0xff, 0xff},
	core.ColorMagenta:  {0xff, 0x55, 0xff, 0xff},
	core.ColorLavender: {0xe6, 0xe6, 0xfa, 0xff},
	core.ColorGray:     {0x99, 0x99, 0x99, 0xff},
}

// rgba returns the screen color for c, white if unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}
