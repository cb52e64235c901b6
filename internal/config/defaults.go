package config

import (
	_ "embed"
)

//go:embed defaults/lookout.yaml
var defaultLookoutYAML []byte

// DefaultLookoutConfig returns the hardcoded default configuration.
// It mirrors defaults/lookout.yaml and serves as the last-resort fallback.
func DefaultLookoutConfig() LookoutConfig {
	return LookoutConfig{
		View: ViewConfig{
			FOV:      120,
			VertSpan: 60,
			PanStep:  3.0,
			AimStep:  1.5,
		},
		Weather: WeatherConfig{
			MinDuration: 45,
			MaxDuration: 90,
			States: map[string]WeatherScales{
				"clear": {SpawnScale: 1.0, LifetimeScale: 1.0},
				"hot":   {SpawnScale: 0.5, LifetimeScale: 2.0},
				"windy": {SpawnScale: 0.7, LifetimeScale: 1.5},
				"rainy": {SpawnScale: 2.0, LifetimeScale: 0.5},
			},
		},
		Fires: FireConfig{
			SpawnInterval:    6.0,
			BaseLifetime:     30.0,
			MinSeparation:    6.0,
			MaxPlaceAttempts: 20,
		},
		Detection: DetectionConfig{
			Tolerance: 4.0,
		},
		Shift: ShiftConfig{
			Length:          300,
			PointsPerReport: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 9000,
			},
			Scaling: ScalingConfig{
				SpawnAcceleration: 0.5,
				LifetimeReduction: 0.3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLookoutYAML
}
