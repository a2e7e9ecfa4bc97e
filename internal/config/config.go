package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for configuration
const (
	DefaultRefreshRate = 60
	DefaultLogFile     = "retropong.log"
	MaxRefreshRate     = 240
)

// Config holds the application configuration
type Config struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Display    DisplayConfig
}

// DisplayConfig covers the display/input collaborator only. The simulation
// itself is not configurable.
type DisplayConfig struct {
	RefreshRate int         `yaml:"refresh_rate"`
	Keys        KeyBindings `yaml:"keys"`
	Theme       Theme       `yaml:"theme"`
}

// KeyBindings maps single-rune keys to the vertical axis. Arrow keys are
// always bound in addition to these.
type KeyBindings struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

// Theme selects tcell color names per sprite tag.
type Theme struct {
	Ball   string `yaml:"ball"`
	Paddle string `yaml:"paddle"`
}

// DefaultDisplay returns the built-in display configuration.
func DefaultDisplay() DisplayConfig {
	return DisplayConfig{
		RefreshRate: DefaultRefreshRate,
		Keys:        KeyBindings{Up: "w", Down: "s"},
		Theme:       Theme{Ball: "white", Paddle: "aqua"},
	}
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("retropong", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to display config file (YAML)")
	debug := fs.Bool("debug", false, "write a debug log")
	logFile := fs.String("log", DefaultLogFile, "debug log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigPath: *configPath,
		Debug:      *debug,
		LogFile:    *logFile,
		Display:    DefaultDisplay(),
	}

	if err := cfg.loadDisplay(); err != nil {
		return nil, err
	}

	if err := cfg.Display.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDisplay overlays the display config from a file, if one is found.
// Search order: --config path, then ~/.retropong/config.yaml. A missing
// user config is not an error; an explicit --config that fails to load is.
func (c *Config) loadDisplay() error {
	if c.ConfigPath != "" {
		data, err := os.ReadFile(c.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", c.ConfigPath, err)
		}
		if err := yaml.Unmarshal(data, &c.Display); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", c.ConfigPath, err)
		}
		return nil
	}

	if path := userConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &c.Display); err != nil {
				return fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	return nil
}

// userConfigPath returns the user config file path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retropong", "config.yaml")
}

func (d *DisplayConfig) validate() error {
	if d.RefreshRate < 1 || d.RefreshRate > MaxRefreshRate {
		return fmt.Errorf("refresh_rate must be between 1 and %d, got %d", MaxRefreshRate, d.RefreshRate)
	}
	if err := validateKey("up", d.Keys.Up); err != nil {
		return err
	}
	if err := validateKey("down", d.Keys.Down); err != nil {
		return err
	}
	return nil
}

func validateKey(name, key string) error {
	if len([]rune(key)) != 1 {
		return fmt.Errorf("keys.%s must be a single character, got %q", name, key)
	}
	return nil
}

// UpRune returns the bound up key as a rune.
func (d *DisplayConfig) UpRune() rune {
	return []rune(d.Keys.Up)[0]
}

// DownRune returns the bound down key as a rune.
func (d *DisplayConfig) DownRune() rune {
	return []rune(d.Keys.Down)[0]
}
