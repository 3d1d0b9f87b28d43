package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fractals/internal/core"
)

// Load loads the render configuration.
// Search order: customPath -> ~/.fractals/config.yaml -> ./configs/fractals.yaml -> embedded default
func Load(customPath string) (File, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return File{}, fmt.Errorf("config: failed to read %s: %w: %w", customPath, core.ErrConfig, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return File{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "fractals.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFractalsYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig, so omitted keys keep their
// defaults.
func Parse(data []byte) (File, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("failed to parse: %w: %w", core.ErrConfig, err)
	}
	if cfg.Curves == nil {
		cfg.Curves = map[string]CurveConfig{}
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg File) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserDir returns ~/.fractals, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fractals")
}

// UserConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
