package config

import (
	_ "embed"
)

//go:embed defaults/bubblepop.yaml
var defaultBubbleYAML []byte

// DefaultBubbleConfig returns the default bubble shooter configuration.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		Physics: BubblePhysics{
			LaunchSpeed: 14.0, // World units per tick
			AimStep:     0.045,
			MaxAimAngle: 1.25, // Just past 70 degrees either side
		},
		Grid: BubbleGrid{
			Radius:      16.0,
			Margin:      0,
			Cols:        10,
			SearchSlack: 8,
		},
		Gameplay: BubbleGameplay{
			MinMatch:       3,
			PointsPerMatch: 10,
			CoinsPerBubble: 10,
		},
		Curve: BubbleCurve{
			BaseRows:       4,
			MaxRows:        12,
			RowsEvery:      2,
			BaseColors:     3,
			MaxColors:      6,
			ColorsEvery:    3,
			BaseShots:      30,
			MinShots:       12,
			ShotsDecEvery:  3,
			ShotsDecAmount: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bubblepop", "bubblepop_endless":
		return defaultBubbleYAML
	default:
		return nil
	}
}
