package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultLookoutConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg LookoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML should validate: %v", err)
	}

	def := DefaultLookoutConfig()
	if cfg.Fires.SpawnInterval != def.Fires.SpawnInterval {
		t.Errorf("spawn_interval mismatch: yaml %v, hardcoded %v", cfg.Fires.SpawnInterval, def.Fires.SpawnInterval)
	}
	if cfg.Detection.Tolerance != def.Detection.Tolerance {
		t.Errorf("tolerance mismatch: yaml %v, hardcoded %v", cfg.Detection.Tolerance, def.Detection.Tolerance)
	}
	for _, name := range WeatherStateNames {
		if cfg.Weather.States[name] != def.Weather.States[name] {
			t.Errorf("weather state %q mismatch: yaml %+v, hardcoded %+v",
				name, cfg.Weather.States[name], def.Weather.States[name])
		}
	}
}

func TestValidateRejectsMalformedWeatherTable(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LookoutConfig)
		wantSub string
	}{
		{
			name: "missing state",
			mutate: func(c *LookoutConfig) {
				delete(c.Weather.States, "rainy")
			},
			wantSub: "missing",
		},
		{
			name: "unknown state",
			mutate: func(c *LookoutConfig) {
				c.Weather.States["foggy"] = WeatherScales{SpawnScale: 1, LifetimeScale: 1}
			},
			wantSub: "unknown state",
		},
		{
			name: "zero spawn scale",
			mutate: func(c *LookoutConfig) {
				c.Weather.States["hot"] = WeatherScales{SpawnScale: 0, LifetimeScale: 2}
			},
			wantSub: "spawn_scale",
		},
		{
			name: "negative lifetime scale",
			mutate: func(c *LookoutConfig) {
				c.Weather.States["clear"] = WeatherScales{SpawnScale: 1, LifetimeScale: -1}
			},
			wantSub: "lifetime_scale",
		},
		{
			name: "inverted durations",
			mutate: func(c *LookoutConfig) {
				c.Weather.MinDuration = 90
				c.Weather.MaxDuration = 45
			},
			wantSub: "duration",
		},
		{
			name: "zero spawn interval",
			mutate: func(c *LookoutConfig) {
				c.Fires.SpawnInterval = 0
			},
			wantSub: "spawn_interval",
		},
		{
			name: "zero tolerance",
			mutate: func(c *LookoutConfig) {
				c.Detection.Tolerance = 0
			},
			wantSub: "tolerance",
		},
		{
			name: "bad fov",
			mutate: func(c *LookoutConfig) {
				c.View.FOV = 400
			},
			wantSub: "fov",
		},
		{
			name: "zero place attempts",
			mutate: func(c *LookoutConfig) {
				c.Fires.MaxPlaceAttempts = 0
			},
			wantSub: "max_place_attempts",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLookoutConfig()
			// Copy the map so mutations don't leak between cases
			states := make(map[string]WeatherScales, len(cfg.Weather.States))
			for k, v := range cfg.Weather.States {
				states[k] = v
			}
			cfg.Weather.States = states

			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q should mention %q", err.Error(), tc.wantSub)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, GetDefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Fires.SpawnInterval != DefaultLookoutConfig().Fires.SpawnInterval {
		t.Errorf("loaded spawn_interval = %v, expected default", cfg.Fires.SpawnInterval)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing explicit path")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("fires:\n  spawn_interval: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail fast on a config that does not validate")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpawnAcceleration: 0.5, LifetimeReduction: 0.3},
	}
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at start = %v, expected 0.0", lvl)
	}
	if lvl := d.Level(0, 500); lvl != 0.5 {
		t.Errorf("Level at half progression = %v, expected 0.5", lvl)
	}
	if lvl := d.Level(0, 2000); lvl != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", lvl)
	}

	// Interval shrinks with difficulty but never below the floor
	if got := d.SpawnInterval(10, 0, 0); got != 10 {
		t.Errorf("SpawnInterval at level 0 = %v, expected 10", got)
	}
	if got := d.SpawnInterval(10, 0, 1000); got != 5 {
		t.Errorf("SpawnInterval at max level = %v, expected 5", got)
	}

	if got := d.Lifetime(30, 0, 1000); got != 21 {
		t.Errorf("Lifetime at max level = %v, expected 21", got)
	}

	// Disabled manager stays at the initial level
	d.SetEnabled(false)
	if lvl := d.Level(0, 1000); lvl != 0.0 {
		t.Errorf("disabled Level = %v, expected 0.0", lvl)
	}
}

func TestDifficultyPresets(t *testing.T) {
	if InitialLevelForPreset(DifficultyEasy) != 0.0 {
		t.Error("easy preset should start at 0.0")
	}
	if InitialLevelForPreset(DifficultyNormal) != 0.3 {
		t.Error("normal preset should start at 0.3")
	}
	if InitialLevelForPreset(DifficultyHard) != 0.7 {
		t.Error("hard preset should start at 0.7")
	}
	if !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed preset should be fixed")
	}
	if IsFixedPreset(DifficultyHard) {
		t.Error("hard preset should not be fixed")
	}
}
