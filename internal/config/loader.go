package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAscent loads the Ascent configuration.
// Search order: customPath -> ~/.leap/configs/ascent.yaml -> ./configs/ascent.yaml -> embedded default
func LoadAscent(customPath string) (AscentConfig, error) {
	var cfg AscentConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ascent.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ascent.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAscentYAML, &cfg); err != nil {
		return DefaultAscentConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leap", "configs", filename)
}

// ApplyAscentPreset modifies the config based on a difficulty preset.
func ApplyAscentPreset(cfg *AscentConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay at the extremes
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.MaxChance = 0.15
		cfg.Generation.MaxSpacing = 95
	case DifficultyHard:
		cfg.Hazards.MaxChance = 0.30
		cfg.Hazards.IntroScore = 500
	}
}

// ApplyAscentClassic reshapes the config into the classic variant: stronger
// air friction, no phantom or shrinking platforms, and no singularities.
func ApplyAscentClassic(cfg *AscentConfig) {
	cfg.Physics.Friction = 0.90
	cfg.Physics.SteerAccel = 0.9
	cfg.Generation.Weights.PhantomBase = 0
	cfg.Generation.Weights.PhantomSlope = 0
	cfg.Generation.Weights.ShrinkingBase = 0
	cfg.Generation.Weights.ShrinkingSlope = 0
	cfg.Hazards.AllowSingularity = false
	cfg.Hazards.IntroScore = 1400
}
