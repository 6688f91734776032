package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keyBindings lists the physical keys for each action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionQuit:    {ebiten.KeyQ},
}

// pollInput samples the keyboard. Unlike a terminal, ebiten reports real
// key state, so held and just-pressed come straight from the device.
func pollInput() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Press(action)
			} else if ebiten.IsKeyPressed(k) {
				frame.Hold(action)
			}
		}
	}
	return frame
}

// pollClick returns the cursor position of a fresh left click.
func pollClick() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}
