package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config holds the tool configuration as read from flags or a JSON
// config file. It carries the documented defaults explicitly rather
// than reading them from ambient state.
type Config struct {
	FontSize int    `json:"font_size"`
	Color    string `json:"color"`
	Position string `json:"position"`
	Quality  int    `json:"quality"`
	Workers  int    `json:"workers"`
	FontPath string `json:"font_path,omitempty"`
}

// Default returns a configuration with default values: 30pt white text
// at the bottom-right corner.
func Default() *Config {
	return &Config{
		FontSize: 30,
		Color:    "255,255,255",
		Position: "bottom_right",
		Quality:  90,
		Workers:  runtime.NumCPU(),
	}
}

// LoadFromFile loads configuration from a JSON file. Fields absent
// from the file keep their defaults.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves configuration to a JSON file.
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FontSize < 1 {
		return fmt.Errorf("font_size must be positive")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}

// ParseColor parses "R,G,B" with each component in 0-255. It is the
// caller's job to substitute the default white on error.
func ParseColor(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("color must be three comma-separated integers, got %q", s)
	}

	var vals [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color component %q", p)
		}
		if n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("color component %d out of range 0-255", n)
		}
		vals[i] = uint8(n)
	}
	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "photostamp", "config.json")
}
