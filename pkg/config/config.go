// Package config loads the menu demo configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/textmenu/pkg/menu"
)

// Config is the configuration data as present in a YAML config file.
// Zero values fall back to the defaults of Default.
type Config struct {
	Menu        Menu          `yaml:"menu"`
	LogLevel    string        `yaml:"log-level"`
	MetricsPort int           `yaml:"metrics-port"`
	ActionDelay time.Duration `yaml:"action-delay"`
}

// Menu holds the presentation settings applied to every menu.
type Menu struct {
	Prompt         string `yaml:"prompt"`
	Title          string `yaml:"title"`
	SeparatorWidth int    `yaml:"separator-width"`
}

// Default returns the configuration used when no file is given.
// A zero MetricsPort disables the side server.
func Default() Config {
	return Config{
		Menu: Menu{
			Prompt:         menu.DefaultPrompt,
			Title:          menu.DefaultTitle,
			SeparatorWidth: menu.DefaultSeparatorWidth,
		},
		LogLevel:    "info",
		ActionDelay: 3 * time.Second,
	}
}

// Parse decodes data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Menu.SeparatorWidth < 0 {
		return fmt.Errorf("separator-width must not be negative, got %d", c.Menu.SeparatorWidth)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("metrics-port out of range: %d", c.MetricsPort)
	}
	if c.ActionDelay < 0 {
		return fmt.Errorf("action-delay must not be negative, got %s", c.ActionDelay)
	}
	return nil
}

// Options returns the menu options for the presentation settings.
func (c Config) Options() []menu.Option {
	return []menu.Option{
		menu.WithPrompt(c.Menu.Prompt),
		menu.WithTitle(c.Menu.Title),
		menu.WithSeparatorWidth(c.Menu.SeparatorWidth),
	}
}
