// Package config provides YAML-based game configuration loading and
// difficulty presets for the bubble shooter.
package config

// BubbleConfig contains all configuration for the bubble shooter.
type BubbleConfig struct {
	Physics  BubblePhysics  `yaml:"physics"`
	Grid     BubbleGrid     `yaml:"grid"`
	Gameplay BubbleGameplay `yaml:"gameplay"`
	Curve    BubbleCurve    `yaml:"curve"`
}

// BubblePhysics defines projectile parameters.
type BubblePhysics struct {
	LaunchSpeed float64 `yaml:"launch_speed"` // World units per tick
	AimStep     float64 `yaml:"aim_step"`     // Radians per tick of held rotation
	MaxAimAngle float64 `yaml:"max_aim_angle"`
}

// BubbleGrid defines grid geometry parameters.
type BubbleGrid struct {
	Radius      float64 `yaml:"radius"` // Bubble radius in world units
	Margin      float64 `yaml:"margin"`
	Cols        int     `yaml:"cols"`
	SearchSlack int     `yaml:"search_slack"` // Extra rows scanned below the deepest bubble when snapping
}

// BubbleGameplay defines scoring and matching parameters.
type BubbleGameplay struct {
	MinMatch       int `yaml:"min_match"` // Minimum group size to clear
	PointsPerMatch int `yaml:"points_per_match"`
	CoinsPerBubble int `yaml:"coins_per_bubble"`
}

// BubbleCurve defines the stepped level progression.
type BubbleCurve struct {
	BaseRows       int `yaml:"base_rows"`
	MaxRows        int `yaml:"max_rows"`
	RowsEvery      int `yaml:"rows_every"`
	BaseColors     int `yaml:"base_colors"`
	MaxColors      int `yaml:"max_colors"`
	ColorsEvery    int `yaml:"colors_every"`
	BaseShots      int `yaml:"base_shots"`
	MinShots       int `yaml:"min_shots"`
	ShotsDecEvery  int `yaml:"shots_dec_every"`
	ShotsDecAmount int `yaml:"shots_dec_amount"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyBubblePreset modifies the config based on a difficulty preset.
// "fixed" freezes the curve at its base values; the other presets trade
// shot budget and color variety.
func ApplyBubblePreset(cfg *BubbleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Curve.BaseShots += 10
		cfg.Curve.MinShots += 4
		cfg.Curve.MaxColors = 4
	case DifficultyHard:
		cfg.Curve.BaseShots -= 6
		cfg.Curve.BaseColors = 4
		cfg.Curve.ShotsDecEvery = 2
	case DifficultyFixed:
		cfg.Curve.MaxRows = cfg.Curve.BaseRows
		cfg.Curve.MaxColors = cfg.Curve.BaseColors
		cfg.Curve.ShotsDecAmount = 0
	}
}
