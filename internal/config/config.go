package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultDelayMS   = int(step.DefaultDelay / time.Millisecond)
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Input     string `yaml:"input"`
	DelayMS   int    `yaml:"delay_ms"`
	Theme     string `yaml:"theme"`
	LogLevel  string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Input:     input.Default,
		DelayMS:   DefaultDelayMS,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}
}

// Load overlays the file at path on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against what the app can actually use, so a
// typo fails at load time instead of falling back silently.
func (c *Config) Validate() error {
	if c.DelayMS < 0 {
		return fmt.Errorf("delay_ms must not be negative, got %d", c.DelayMS)
	}
	if _, err := input.Parse(c.Input); err != nil {
		return err
	}
	cat := catalog.New()
	if _, err := cat.Get(c.Algorithm); err != nil {
		return fmt.Errorf("algorithm: %w (available: %s)", err, strings.Join(cat.IDs(), ", "))
	}
	if !slices.Contains(viz.ThemeNames(), c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(viz.ThemeNames(), ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Values parses the configured input field.
func (c *Config) Values() ([]int, error) {
	return input.Parse(c.Input)
}
