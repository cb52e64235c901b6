// Package config provides YAML-based configuration loading, validation and
// difficulty management for the lookout game.
package config

import (
	"fmt"
	"strings"
)

// LookoutConfig contains all tunables for the lookout simulation.
type LookoutConfig struct {
	View       ViewConfig       `yaml:"view"`
	Weather    WeatherConfig    `yaml:"weather"`
	Fires      FireConfig       `yaml:"fires"`
	Detection  DetectionConfig  `yaml:"detection"`
	Shift      ShiftConfig      `yaml:"shift"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewConfig defines the watchtower viewport geometry.
type ViewConfig struct {
	FOV      float64 `yaml:"fov"`       // Horizontal field of view in degrees
	VertSpan float64 `yaml:"vert_span"` // Vertical span in degrees, centered on the horizon
	PanStep  float64 `yaml:"pan_step"`  // Degrees panned per left/right key event
	AimStep  float64 `yaml:"aim_step"`  // Degrees the crosshair moves per up/down key event
}

// WeatherConfig defines the weather state machine and its per-state scales.
type WeatherConfig struct {
	MinDuration float64                  `yaml:"min_duration"` // Seconds a weather state lasts, lower bound
	MaxDuration float64                  `yaml:"max_duration"` // Seconds a weather state lasts, upper bound
	States      map[string]WeatherScales `yaml:"states"`       // Keyed by clear/hot/windy/rainy
}

// WeatherScales are the multipliers a weather state applies to the fire pool.
// SpawnScale multiplies the base spawn interval (lower = fires more often);
// LifetimeScale multiplies the base lifetime of fires spawned under this state.
type WeatherScales struct {
	SpawnScale    float64 `yaml:"spawn_scale"`
	LifetimeScale float64 `yaml:"lifetime_scale"`
}

// FireConfig defines fire spawning and lifetime parameters.
type FireConfig struct {
	SpawnInterval    float64 `yaml:"spawn_interval"`     // Base seconds between spawns
	BaseLifetime     float64 `yaml:"base_lifetime"`      // Base seconds a fire burns
	MinSeparation    float64 `yaml:"min_separation"`     // Minimum degrees between two fires
	MaxPlaceAttempts int     `yaml:"max_place_attempts"` // Resample attempts before accepting anyway
}

// DetectionConfig defines the fire-finder instrument tolerances.
type DetectionConfig struct {
	Tolerance float64 `yaml:"tolerance"` // Angular radius in degrees around the crosshair
}

// ShiftConfig defines the timed shift mode.
type ShiftConfig struct {
	Length          float64 `yaml:"length"`            // Shift duration in seconds
	PointsPerReport int     `yaml:"points_per_report"` // Score awarded per confirmed report
}

// WeatherStateNames are the four recognized weather state keys, in canonical order.
var WeatherStateNames = []string{"clear", "hot", "windy", "rainy"}

// Validate checks the configuration for values that would corrupt the
// simulation. It is called at startup so a malformed table fails fast with a
// descriptive message instead of silently skewing the difficulty curve.
func (c LookoutConfig) Validate() error {
	if c.View.FOV <= 0 || c.View.FOV > 360 {
		return fmt.Errorf("config: view.fov must be in (0, 360], got %v", c.View.FOV)
	}
	if c.View.VertSpan <= 0 {
		return fmt.Errorf("config: view.vert_span must be positive, got %v", c.View.VertSpan)
	}
	if c.Weather.MinDuration <= 0 || c.Weather.MaxDuration < c.Weather.MinDuration {
		return fmt.Errorf("config: weather durations must satisfy 0 < min_duration <= max_duration, got [%v, %v]",
			c.Weather.MinDuration, c.Weather.MaxDuration)
	}
	for _, name := range WeatherStateNames {
		scales, ok := c.Weather.States[name]
		if !ok {
			return fmt.Errorf("config: weather.states is missing %q (need %s)",
				name, strings.Join(WeatherStateNames, ", "))
		}
		if scales.SpawnScale <= 0 {
			return fmt.Errorf("config: weather.states.%s.spawn_scale must be positive, got %v", name, scales.SpawnScale)
		}
		if scales.LifetimeScale <= 0 {
			return fmt.Errorf("config: weather.states.%s.lifetime_scale must be positive, got %v", name, scales.LifetimeScale)
		}
	}
	for name := range c.Weather.States {
		if !isKnownWeather(name) {
			return fmt.Errorf("config: weather.states has unknown state %q", name)
		}
	}
	if c.Fires.SpawnInterval <= 0 {
		return fmt.Errorf("config: fires.spawn_interval must be positive, got %v", c.Fires.SpawnInterval)
	}
	if c.Fires.BaseLifetime <= 0 {
		return fmt.Errorf("config: fires.base_lifetime must be positive, got %v", c.Fires.BaseLifetime)
	}
	if c.Fires.MinSeparation < 0 {
		return fmt.Errorf("config: fires.min_separation must not be negative, got %v", c.Fires.MinSeparation)
	}
	if c.Fires.MaxPlaceAttempts < 1 {
		return fmt.Errorf("config: fires.max_place_attempts must be at least 1, got %d", c.Fires.MaxPlaceAttempts)
	}
	if c.Detection.Tolerance <= 0 {
		return fmt.Errorf("config: detection.tolerance must be positive, got %v", c.Detection.Tolerance)
	}
	if c.Shift.Length <= 0 {
		return fmt.Errorf("config: shift.length must be positive, got %v", c.Shift.Length)
	}
	return nil
}

func isKnownWeather(name string) bool {
	for _, n := range WeatherStateNames {
		if n == name {
			return true
		}
	}
	return false
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a shift.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnAcceleration float64 `yaml:"spawn_acceleration"` // Fraction the spawn interval shrinks by at max difficulty
	LifetimeReduction float64 `yaml:"lifetime_reduction"` // Fraction fire lifetime shrinks by at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
