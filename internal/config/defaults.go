package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Cannon: CannonConfig{
			Width:         22,
			Height:        16,
			Speed:         200,
			BottomMargin:  10,
			HitGraceMs:    800,
			BlinkPeriodMs: 100,
			ReloadMs:      500,
			Lives:         3,
		},
		PlayerBullet: PlayerBulletConfig{
			Width:  4,
			Height: 8,
			Speed:  0.2,
		},
		Formation: FormationConfig{
			Rows:           5,
			Cols:           11,
			HGap:           30,
			VGap:           30,
			OffsetX:        50,
			OffsetY:        50,
			Speed:          30,
			DropDistance:   20,
			InvasionMargin: 100,
			AnimationMs:    500,
			AngerMs:        5000,
			Types: []AlienType{
				{Width: 22, Height: 16, XShift: 0},
				{Width: 16, Height: 16, XShift: 3},
				{Width: 24, Height: 16, XShift: 0},
			},
			RowsPerType: 2,
		},
		AI: AIConfig{
			MinIntervalMs:   1000,
			MaxIntervalMs:   3000,
			BulletWidth:     4,
			BulletHeight:    8,
			CalmSpeed:       0.1,
			EnragedSpeed:    0.2,
			AngryMultiplier: 1.5,
		},
		Scoring: ScoringConfig{
			AlienPoints:     10,
			StreakThreshold: 3,
			EnragedMs:       5000,
		},
		Bunkers: BunkerConfig{
			Count:            4,
			OffsetFromBottom: 150,
			Rows:             4,
			Cols:             6,
			BrickWidth:       6,
			BrickHeight:      6,
			SpriteX:          84,
			SpriteY:          8,
		},
		Layout: LayoutConfig{
			RestartButtonWidth:   200,
			RestartButtonHeight:  50,
			RestartButtonOffsetY: 50,
		},
	}
}
