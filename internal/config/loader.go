package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the first source found.
// Search order: customPath -> ~/.valleyseer/config.yaml -> ./configs/valleyseer.yaml -> embedded default
func Load(customPath string) (File, error) {
	var f File

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return f, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &f); err != nil {
			return f, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return f, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(userCfgPath, data, &f); err == nil {
				return f, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/valleyseer.yaml"); err == nil {
		if err := decode("configs/valleyseer.yaml", data, &f); err == nil {
			return f, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &f); err != nil {
		return DefaultFile(), nil // Fallback to hardcoded if embed fails
	}
	return f, nil
}

// decode picks TOML for .toml files and YAML for everything else.
func decode(path string, data []byte, f *File) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(f)
		return err
	}
	return yaml.Unmarshal(data, f)
}

// Save writes f as YAML to path, creating parent directories.
func Save(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".valleyseer", filename)
}

// UserConfigPath is the per-user config file location.
func UserConfigPath() string {
	return userConfigPath("config.yaml")
}
