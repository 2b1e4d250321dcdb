package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StyleEnv overrides the configured default style.
const StyleEnv = "CTAB_STYLE"

// Config represents the CLI configuration
type Config struct {
	// Default table style (default, markdown, alternative, minimal)
	Style string `yaml:"style,omitempty"`

	// Append the row count to default-style tables
	Count bool `yaml:"count,omitempty"`

	// Default color mode for stderr messages (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Log handler: text or json
	LogFormat string `yaml:"log_format,omitempty"`

	// Default input format when it cannot be inferred (csv, tsv, json, yaml)
	InputFormat string `yaml:"input_format,omitempty"`
}

// Keys lists the settable configuration keys.
var Keys = []string{"style", "count", "color", "log_format", "input_format"}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/consoletable/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "consoletable", "config.yaml"), nil
}

// DefaultConfigPath returns ~/.config/consoletable/config.yaml
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// GetStyle returns the effective default style: $CTAB_STYLE, then the file.
func (c *Config) GetStyle() string {
	if v := strings.TrimSpace(os.Getenv(StyleEnv)); v != "" {
		return v
	}
	return c.Style
}

// GetColor returns the effective color mode (config default or empty)
func (c *Config) GetColor() string {
	return c.Color
}

// Set assigns a raw string value to key. Values are stored as given;
// callers validate enumerations before saving.
func (c *Config) Set(key, value string) error {
	switch key {
	case "style":
		c.Style = value
	case "count":
		switch strings.ToLower(value) {
		case "true", "yes", "on", "1":
			c.Count = true
		case "false", "no", "off", "0":
			c.Count = false
		default:
			return fmt.Errorf("invalid boolean %q for count", value)
		}
	case "color":
		c.Color = value
	case "log_format":
		c.LogFormat = value
	case "input_format":
		c.InputFormat = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
