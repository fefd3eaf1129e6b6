package bramble

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration, normally read from config.yml.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Resources ResourcesConfig `yaml:"resources"`
	Logging   LoggingConfig   `yaml:"logging"`
	Input     InputConfig     `yaml:"input"`
}

// DisplayConfig controls frame pacing and the initial root size.
type DisplayConfig struct {
	FrameRate int `yaml:"frame_rate"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
}

// ResourcesConfig points at the resource directory.
type ResourcesConfig struct {
	Directory string `yaml:"directory"`
}

// LoggingConfig controls the level filter and timestamps.
type LoggingConfig struct {
	LogLevel      string `yaml:"log_level"`
	UseTimestamps bool   `yaml:"use_timestamps"`
}

// InputConfig maps key names (a single character, or a tcell/ebiten key name
// such as "Escape") to action names.
type InputConfig struct {
	Keybindings map[string]string `yaml:"keybindings"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Display:   DisplayConfig{FrameRate: 30, Width: 80, Height: 24},
		Resources: ResourcesConfig{Directory: "data"},
		Logging:   LoggingConfig{LogLevel: "info", UseTimestamps: true},
		Input: InputConfig{Keybindings: map[string]string{
			"Escape": "ShowMenu",
			"q":      "Exit",
			"Enter":  "Accept",
			"Up":     "ScrollUp",
			"Down":   "ScrollDown",
			"Left":   "ScrollLeft",
			"Right":  "ScrollRight",
		}},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. A missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("bramble: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("bramble: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Display.FrameRate <= 0 || c.Display.FrameRate > 1000 {
		return fmt.Errorf("bramble: display.frame_rate must be in 1..1000, got %d", c.Display.FrameRate)
	}
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return fmt.Errorf("bramble: display size must not be negative")
	}
	if _, err := ParseLevel(c.Logging.LogLevel); err != nil {
		return err
	}
	if _, err := c.Input.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings resolves the key binding table into actions.
func (ic InputConfig) Bindings() (map[string]InputAction, error) {
	out := make(map[string]InputAction, len(ic.Keybindings))
	for key, name := range ic.Keybindings {
		a, err := ParseInputAction(name)
		if err != nil {
			return nil, fmt.Errorf("bramble: keybinding %q: %w", key, err)
		}
		out[key] = a
	}
	return out, nil
}

// FrameDuration is the per-frame budget. It is truncated to whole
// milliseconds.
func (d DisplayConfig) FrameDuration() time.Duration {
	if d.FrameRate <= 0 {
		return 0
	}
	return time.Duration(1000/d.FrameRate) * time.Millisecond
}
