package gioapp

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the application loop and of its window.
type Config struct {
	// TickDuration is the minimum time between two updates.
	TickDuration time.Duration `yaml:"tick_duration"`
	// FPSUpdateTime is how often the frame rate estimate is refreshed.
	FPSUpdateTime time.Duration `yaml:"fps_update_time"`
	// ScrollLineHeight converts pixel scrolls to lines; zero keeps pixel scrolls,
	// which the Mouse ignores.
	ScrollLineHeight float32 `yaml:"scroll_line_height"`

	BlockGUIInput    bool `yaml:"block_gui_input"`
	BlockGUITabInput bool `yaml:"block_gui_tab_input"`

	Window WindowConfig `yaml:"window"`

	// Logger receives the loop diagnostics. slog.Default is used when nil.
	Logger *slog.Logger `yaml:"-"`
}

// WindowConfig describes the window opened by Run.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultConfig returns the configuration used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		TickDuration:     defaultTickDuration,
		FPSUpdateTime:    defaultFPSUpdateTime,
		ScrollLineHeight: 16,
		Window: WindowConfig{
			Title:  "gioapp",
			Width:  800,
			Height: 600,
		},
	}
}

// LoadConfig reads a YAML configuration file. Missing fields keep their default value.
// Durations are written as Go duration strings, e.g. "16ms".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the window settings. Timer settings are not checked;
// non-positive values degrade the tick gate and the frame rate estimate.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
