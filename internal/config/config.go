// Package config defines the marquee demo configuration format and helpers
// for loading it from disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edward-ap/marquee/internal/marquee"
)

const (
	// AppID is the stable application identifier used by the GUI framework.
	AppID = "io.github.edward-ap.marquee"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "Marquee"
	// AppConfigName is the default file looked up in AppConfigSubdir.
	AppConfigName = "config.json"

	// DefaultText is shown when no text is configured.
	DefaultText = "Marquee: text that does not fit scrolls back and forth, pausing at each end."
	// DefaultWidth is the preferred window width.
	DefaultWidth = 360
	// DefaultHeight is the minimum demo window height; the window grows to fit
	// its controls.
	DefaultHeight = 32
	// MinWindowWidth keeps the controls row usable.
	MinWindowWidth = 240
)

// Marquee holds the scroll settings in file-friendly units.
type Marquee struct {
	ScrollSpeed  float32 `json:"scrollSpeed" yaml:"scrollSpeed" validate:"gt=0"`
	Direction    string  `json:"direction" yaml:"direction" validate:"oneof=forward backward"`
	PauseSeconds float64 `json:"pauseSeconds" yaml:"pauseSeconds" validate:"gte=0"`
	LabelSpacing float32 `json:"labelSpacing" yaml:"labelSpacing" validate:"gte=0"`
	FadeLength   float32 `json:"fadeLength" yaml:"fadeLength" validate:"gte=0"`
	Alignment    string  `json:"alignment" yaml:"alignment" validate:"oneof=leading center trailing"`
	Mode         string  `json:"mode" yaml:"mode" validate:"oneof=alternate continuous"`
}

// Window describes the demo window.
type Window struct {
	Width  int `json:"width" yaml:"width" validate:"gte=0"`
	Height int `json:"height" yaml:"height" validate:"gte=0"`
}

// Config aggregates every setting the demo reads at start-up.
type Config struct {
	Text     string  `json:"text" yaml:"text"`
	Marquee  Marquee `json:"marquee" yaml:"marquee"`
	Window   Window  `json:"window" yaml:"window"`
	LogLevel string  `json:"logLevel" yaml:"logLevel" validate:"omitempty,oneof=trace debug info warn error"`
}

// ConfigDir resolves the directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to the default config.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config at path, or at ConfigPath when path is empty. A
// missing file yields defaults. YAML is used for .yaml/.yml files, JSON
// otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	// Fields absent from the file keep their defaults; explicit zeros survive.
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		err = json.Unmarshal(b, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default builds an in-memory config populated with safe defaults.
func Default() *Config {
	def := marquee.DefaultConfig()
	cfg := &Config{
		Marquee: Marquee{
			ScrollSpeed:  def.ScrollSpeed,
			PauseSeconds: def.Pause.Seconds(),
			LabelSpacing: def.LabelSpacing,
			FadeLength:   def.FadeLength,
		},
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults fills blank text and enums, a zero speed, and window
// sizes. Pause, spacing and fade accept 0, so they are only defaulted by
// Default.
func (c *Config) applyRuntimeDefaults() {
	def := marquee.DefaultConfig()
	if strings.TrimSpace(c.Text) == "" {
		c.Text = DefaultText
	}
	if c.Marquee.ScrollSpeed == 0 {
		c.Marquee.ScrollSpeed = def.ScrollSpeed
	}
	c.Marquee.Direction = strings.ToLower(strings.TrimSpace(c.Marquee.Direction))
	if c.Marquee.Direction == "" {
		c.Marquee.Direction = def.Direction.String()
	}
	c.Marquee.Alignment = strings.ToLower(strings.TrimSpace(c.Marquee.Alignment))
	if c.Marquee.Alignment == "" {
		c.Marquee.Alignment = def.Alignment.String()
	}
	c.Marquee.Mode = strings.ToLower(strings.TrimSpace(c.Marquee.Mode))
	if c.Marquee.Mode == "" {
		c.Marquee.Mode = def.Mode.String()
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Width < MinWindowWidth {
		c.Window.Width = MinWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// MarqueeConfig converts the file settings into a marquee.Config.
func (c *Config) MarqueeConfig() marquee.Config {
	cfg := marquee.Config{
		ScrollSpeed:  c.Marquee.ScrollSpeed,
		Pause:        time.Duration(c.Marquee.PauseSeconds * float64(time.Second)),
		LabelSpacing: c.Marquee.LabelSpacing,
		FadeLength:   c.Marquee.FadeLength,
	}
	if c.Marquee.Direction == marquee.Backward.String() {
		cfg.Direction = marquee.Backward
	}
	switch c.Marquee.Alignment {
	case marquee.AlignCenter.String():
		cfg.Alignment = marquee.AlignCenter
	case marquee.AlignTrailing.String():
		cfg.Alignment = marquee.AlignTrailing
	}
	if c.Marquee.Mode == marquee.Continuous.String() {
		cfg.Mode = marquee.Continuous
	}
	return cfg
}
