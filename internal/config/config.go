// Package config provides YAML-based gameplay configuration loading and
// validation for the invaders game.
package config

// InvadersConfig contains all gameplay tuning for Invaders.
type InvadersConfig struct {
	Cannon       CannonConfig       `yaml:"cannon"`
	PlayerBullet PlayerBulletConfig `yaml:"player_bullet"`
	Formation    FormationConfig    `yaml:"formation"`
	AI           AIConfig           `yaml:"ai"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	Bunkers      BunkerConfig       `yaml:"bunkers"`
	Layout       LayoutConfig       `yaml:"layout"`
}

// CannonConfig defines the player's cannon.
type CannonConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"` // Pixels per second
	BottomMargin  float64 `yaml:"bottom_margin"`
	HitGraceMs    float64 `yaml:"hit_grace_ms"`
	BlinkPeriodMs float64 `yaml:"blink_period_ms"`
	ReloadMs      float64 `yaml:"reload_ms"`
	Lives         int     `yaml:"lives"`
}

// PlayerBulletConfig defines the cannon's projectile.
type PlayerBulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per millisecond, travelling up
}

// AlienType defines the sprite box of one alien kind.
type AlienType struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	XShift float64 `yaml:"x_shift"`
}

// FormationConfig defines the alien grid and its movement.
type FormationConfig struct {
	Rows           int         `yaml:"rows"`
	Cols           int         `yaml:"cols"`
	HGap           float64     `yaml:"h_gap"`
	VGap           float64     `yaml:"v_gap"`
	OffsetX        float64     `yaml:"offset_x"`
	OffsetY        float64     `yaml:"offset_y"`
	Speed          float64     `yaml:"speed"` // Pixels per second
	DropDistance   float64     `yaml:"drop_distance"`
	InvasionMargin float64     `yaml:"invasion_margin"`
	AnimationMs    float64     `yaml:"animation_ms"`
	AngerMs        float64     `yaml:"anger_ms"`
	Types          []AlienType `yaml:"types"`
	RowsPerType    int         `yaml:"rows_per_type"`
}

// TypeForRow returns the alien type used for the given formation row.
// Rows past the configured types reuse the last one.
func (f FormationConfig) TypeForRow(row int) AlienType {
	perType := f.RowsPerType
	if perType <= 0 {
		perType = 1
	}
	idx := row / perType
	if idx >= len(f.Types) {
		idx = len(f.Types) - 1
	}
	return f.Types[idx]
}

// AIConfig defines alien shot selection timing and projectile speeds.
type AIConfig struct {
	MinIntervalMs   float64 `yaml:"min_interval_ms"`
	MaxIntervalMs   float64 `yaml:"max_interval_ms"`
	BulletWidth     float64 `yaml:"bullet_width"`
	BulletHeight    float64 `yaml:"bullet_height"`
	CalmSpeed       float64 `yaml:"calm_speed"`    // Pixels per millisecond
	EnragedSpeed    float64 `yaml:"enraged_speed"` // Pixels per millisecond
	AngryMultiplier float64 `yaml:"angry_multiplier"`
}

// ScoringConfig defines points and the kill-streak escalation.
type ScoringConfig struct {
	AlienPoints     int     `yaml:"alien_points"`
	StreakThreshold int     `yaml:"streak_threshold"`
	EnragedMs       float64 `yaml:"enraged_ms"`
}

// BunkerConfig defines the destructible cover.
type BunkerConfig struct {
	Count            int     `yaml:"count"`
	OffsetFromBottom float64 `yaml:"offset_from_bottom"`
	Rows             int     `yaml:"rows"`
	Cols             int     `yaml:"cols"`
	BrickWidth       float64 `yaml:"brick_width"`
	BrickHeight      float64 `yaml:"brick_height"`
	SpriteX          float64 `yaml:"sprite_x"` // Sprite sheet origin for brick sampling
	SpriteY          float64 `yaml:"sprite_y"`
}

// Width returns the total bunker width in pixels.
func (b BunkerConfig) Width() float64 {
	return float64(b.Cols) * b.BrickWidth
}

// LayoutConfig defines on-field controls.
type LayoutConfig struct {
	RestartButtonWidth   float64 `yaml:"restart_button_width"`
	RestartButtonHeight  float64 `yaml:"restart_button_height"`
	RestartButtonOffsetY float64 `yaml:"restart_button_offset_y"` // Below field center
}
