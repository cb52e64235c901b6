package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the lookout configuration and validates it.
// Search order: customPath -> ~/.lookout/configs/lookout.yaml ->
// ./configs/lookout.yaml -> embedded default.
// An explicitly requested file that is missing or malformed is an error;
// the fallback locations are skipped silently when absent.
func Load(customPath string) (LookoutConfig, error) {
	var cfg LookoutConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lookout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: failed to parse %s: %w", userCfgPath, err)
			}
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("%w (in %s)", err, userCfgPath)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "lookout.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse configs/lookout.yaml: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in configs/lookout.yaml)", err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLookoutYAML, &cfg); err != nil {
		return DefaultLookoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return DefaultLookoutConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lookout", "configs", filename)
}
