package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.{yaml,toml} -> ./configs/dodge.{yaml,toml} -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. The result is validated only when it comes from customPath; broken
// files on the search path are skipped.
func LoadDodge(customPath string) (DodgeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDodgeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultDodgeConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultDodgeConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{}
	for _, name := range []string{"dodge.yaml", "dodge.toml"} {
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates, filepath.Join("configs", "dodge.yaml"), filepath.Join("configs", "dodge.toml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("dodge.yaml", defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the defaults, choosing the format by extension.
func decode(path string, data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	return cfg, err
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyRemoval overrides the removal policy. Empty keeps the configured one.
func ApplyRemoval(cfg *DodgeConfig, removal string) error {
	switch removal {
	case "":
		return nil
	case RemovalMatch, RemovalFront:
		cfg.Rules.Removal = removal
		return nil
	default:
		return fmt.Errorf("unknown removal policy %q (want %q or %q)", removal, RemovalMatch, RemovalFront)
	}
}
