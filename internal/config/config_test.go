package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBubbleConfig(t *testing.T) {
	cfg := DefaultBubbleConfig()

	if cfg.Grid.Cols <= 0 {
		t.Errorf("Default column count should be positive, got %d", cfg.Grid.Cols)
	}
	if cfg.Grid.Radius <= 0 {
		t.Errorf("Default radius should be positive, got %v", cfg.Grid.Radius)
	}
	if cfg.Gameplay.MinMatch != 3 {
		t.Errorf("Default minimum match should be 3, got %d", cfg.Gameplay.MinMatch)
	}
	if cfg.Physics.LaunchSpeed <= 0 {
		t.Errorf("Default launch speed should be positive, got %v", cfg.Physics.LaunchSpeed)
	}
	if cfg.Curve.BaseShots <= cfg.Curve.MinShots {
		t.Errorf("Base shots %d should exceed the floor %d", cfg.Curve.BaseShots, cfg.Curve.MinShots)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML is the canonical default; loading with no custom
	// path and no user config must produce a playable configuration
	cfg, err := LoadBubble("")
	if err != nil {
		t.Fatalf("LoadBubble with no path should not fail: %v", err)
	}
	if cfg.Grid.Cols == 0 || cfg.Curve.BaseShots == 0 {
		t.Error("Loaded default config should be fully populated")
	}
}

func TestLoadBubbleCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yamlData := `
physics:
  launch_speed: 99.0
grid:
  cols: 7
`
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadBubble(path)
	if err != nil {
		t.Fatalf("LoadBubble should read the custom file: %v", err)
	}
	if cfg.Physics.LaunchSpeed != 99.0 {
		t.Errorf("Custom launch speed should be 99.0, got %v", cfg.Physics.LaunchSpeed)
	}
	if cfg.Grid.Cols != 7 {
		t.Errorf("Custom column count should be 7, got %d", cfg.Grid.Cols)
	}
}

func TestLoadBubbleMissingCustomPath(t *testing.T) {
	if _, err := LoadBubble("/nonexistent/nope.yaml"); err == nil {
		t.Error("Explicit missing config path should be an error")
	}
}

func TestLoadBubbleBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadBubble(path); err == nil {
		t.Error("Unparseable custom config should be an error")
	}
}

func TestApplyBubblePresetEasy(t *testing.T) {
	base := DefaultBubbleConfig()
	cfg := DefaultBubbleConfig()
	ApplyBubblePreset(&cfg, DifficultyEasy)

	if cfg.Curve.BaseShots <= base.Curve.BaseShots {
		t.Errorf("Easy should grant more shots, got %d vs %d", cfg.Curve.BaseShots, base.Curve.BaseShots)
	}
	if cfg.Curve.MaxColors >= base.Curve.MaxColors {
		t.Errorf("Easy should cap colors lower, got %d vs %d", cfg.Curve.MaxColors, base.Curve.MaxColors)
	}
}

func TestApplyBubblePresetHard(t *testing.T) {
	base := DefaultBubbleConfig()
	cfg := DefaultBubbleConfig()
	ApplyBubblePreset(&cfg, DifficultyHard)

	if cfg.Curve.BaseShots >= base.Curve.BaseShots {
		t.Errorf("Hard should grant fewer shots, got %d vs %d", cfg.Curve.BaseShots, base.Curve.BaseShots)
	}
}

func TestApplyBubblePresetFixed(t *testing.T) {
	cfg := DefaultBubbleConfig()
	ApplyBubblePreset(&cfg, DifficultyFixed)

	if cfg.Curve.MaxRows != cfg.Curve.BaseRows {
		t.Error("Fixed should freeze rows at the base value")
	}
	if cfg.Curve.MaxColors != cfg.Curve.BaseColors {
		t.Error("Fixed should freeze colors at the base value")
	}
	if cfg.Curve.ShotsDecAmount != 0 {
		t.Error("Fixed should stop the shot budget from shrinking")
	}
}

func TestApplyBubblePresetNormal(t *testing.T) {
	base := DefaultBubbleConfig()
	cfg := DefaultBubbleConfig()
	ApplyBubblePreset(&cfg, DifficultyNormal)

	if cfg != base {
		t.Error("Normal preset should leave the config unchanged")
	}
}
