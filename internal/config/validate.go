package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c InvadersConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Cannon.Width <= 0 || c.Cannon.Height <= 0 {
		bad("cannon size %vx%v must be positive", c.Cannon.Width, c.Cannon.Height)
	}
	if c.Cannon.Speed < 0 {
		bad("cannon speed %v must not be negative", c.Cannon.Speed)
	}
	if c.Cannon.Lives <= 0 {
		bad("cannon lives %d must be positive", c.Cannon.Lives)
	}
	if c.Cannon.HitGraceMs < 0 || c.Cannon.ReloadMs < 0 {
		bad("cannon timers must not be negative")
	}
	if c.Cannon.BlinkPeriodMs <= 0 {
		bad("cannon blink period %v must be positive", c.Cannon.BlinkPeriodMs)
	}

	if c.PlayerBullet.Width <= 0 || c.PlayerBullet.Height <= 0 || c.PlayerBullet.Speed <= 0 {
		bad("player bullet size and speed must be positive")
	}

	f := c.Formation
	if f.Rows <= 0 || f.Cols <= 0 {
		bad("formation %dx%d is empty", f.Rows, f.Cols)
	}
	if len(f.Types) == 0 {
		bad("formation needs at least one alien type")
	}
	for i, t := range f.Types {
		if t.Width <= 0 || t.Height <= 0 {
			bad("alien type %d size %vx%v must be positive", i, t.Width, t.Height)
		}
	}
	if f.Speed < 0 || f.DropDistance < 0 {
		bad("formation speed and drop distance must not be negative")
	}
	if f.AnimationMs <= 0 {
		bad("animation period %v must be positive", f.AnimationMs)
	}

	a := c.AI
	if a.MinIntervalMs <= 0 || a.MaxIntervalMs < a.MinIntervalMs {
		bad("shot interval [%v, %v) is not a valid range", a.MinIntervalMs, a.MaxIntervalMs)
	}
	if a.BulletWidth <= 0 || a.BulletHeight <= 0 {
		bad("alien bullet size must be positive")
	}
	if a.CalmSpeed <= 0 || a.EnragedSpeed <= 0 || a.AngryMultiplier <= 0 {
		bad("alien bullet speeds must be positive")
	}

	if c.Scoring.AlienPoints < 0 || c.Scoring.StreakThreshold <= 0 || c.Scoring.EnragedMs < 0 {
		bad("scoring values out of range")
	}

	b := c.Bunkers
	if b.Count < 0 {
		bad("bunker count %d must not be negative", b.Count)
	}
	if b.Count > 0 && (b.Rows <= 0 || b.Cols <= 0 || b.BrickWidth <= 0 || b.BrickHeight <= 0) {
		bad("bunker grid and brick size must be positive")
	}

	if c.Layout.RestartButtonWidth <= 0 || c.Layout.RestartButtonHeight <= 0 {
		bad("restart button size must be positive")
	}

	return errors.Join(errs...)
}
