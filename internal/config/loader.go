package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.rex/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files overlay the defaults, so they may set only the keys they change.
func Load(customPath string) (RunnerConfig, error) {
	cfg := base()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryFile(filepath.Join("configs", "runner.yaml")); ok {
		return loaded, nil
	}

	return cfg, nil
}

// base returns the embedded defaults, falling back to the hardcoded ones.
func base() RunnerConfig {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig()
	}
	return cfg
}

// tryFile overlays path on the defaults. Unreadable or invalid files are skipped.
func tryFile(path string) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, false
	}
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, false
	}
	if cfg.Validate() != nil {
		return RunnerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rex", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
