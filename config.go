package drawer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the file form of a drawer setup. Every field is optional;
// unset fields keep the defaults from DefaultOptions and DefaultDrawerConfig.
type Config struct {
	Swipe  SwipeConfig  `yaml:"swipe" toml:"swipe"`
	Drawer DrawerConfig `yaml:"drawer" toml:"drawer"`
}

// SwipeConfig holds the non-callback Swipable options.
type SwipeConfig struct {
	Enabled          *bool    `yaml:"enabled" toml:"enabled"`
	Threshold        float64  `yaml:"threshold" toml:"threshold"`
	RubberBanding    bool     `yaml:"rubberBanding" toml:"rubberBanding"`
	Position         string   `yaml:"position" toml:"position"`
	PositionLeft     *Measure `yaml:"positionLeft" toml:"positionLeft"`
	PositionRight    *Measure `yaml:"positionRight" toml:"positionRight"`
	PreserveMomentum *bool    `yaml:"preserveMomentum" toml:"preserveMomentum"`
	MomentumWindowMs int      `yaml:"momentumWindowMs" toml:"momentumWindowMs"`
	AllowOutsideDrag bool     `yaml:"allowOutsideDrag" toml:"allowOutsideDrag"`
	SampleWindow     int      `yaml:"sampleWindow" toml:"sampleWindow"`
	FrameRate        float64  `yaml:"frameRate" toml:"frameRate"`
}

// DrawerConfig holds the drawer shell settings.
type DrawerConfig struct {
	SlideDirection string   `yaml:"slideDirection" toml:"slideDirection"`
	Width          *Measure `yaml:"width" toml:"width"`
	MaxWidth       float64  `yaml:"maxWidth" toml:"maxWidth"`
	MinWidth       float64  `yaml:"minWidth" toml:"minWidth"`
	IsFullWidth    bool     `yaml:"isFullWidth" toml:"isFullWidth"`
	Title          string   `yaml:"title" toml:"title"`
}

// DefaultDrawerConfig returns the shell defaults: 85% wide, between 280 and
// 450 px, sliding in from the left.
func DefaultDrawerConfig() DrawerConfig {
	return DrawerConfig{
		SlideDirection: "horizontal",
		MaxWidth:       450,
		MinWidth:       280,
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("drawer: read config: %w", err)
	}
	return ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseConfig decodes data in the given format ("yaml", "yml" or "toml").
func ParseConfig(data []byte, format string) (*Config, error) {
	cfg := &Config{Drawer: DefaultDrawerConfig()}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("drawer: parse yaml config: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("drawer: parse toml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("drawer: unsupported config format %q", format)
	}
	return cfg, nil
}

// Options overlays the swipe section onto DefaultOptions. Unknown
// positions fall back to center with a log line.
func (c *Config) Options() Options {
	o := DefaultOptions()
	sc := c.Swipe
	if sc.Enabled != nil {
		o.Enabled = *sc.Enabled
	}
	o.Threshold = sc.Threshold
	o.RubberBanding = sc.RubberBanding
	if sc.Position != "" {
		p, err := ParsePosition(sc.Position)
		if err != nil {
			log.Printf("%v, using center", err)
		}
		o.Position = p
	}
	if sc.PositionLeft != nil {
		o.PositionLeft = *sc.PositionLeft
	}
	if sc.PositionRight != nil {
		o.PositionRight = *sc.PositionRight
	}
	if sc.PreserveMomentum != nil {
		o.PreserveMomentum = *sc.PreserveMomentum
	}
	if sc.MomentumWindowMs > 0 {
		o.MomentumWindow = time.Duration(sc.MomentumWindowMs) * time.Millisecond
	}
	o.AllowOutsideDrag = sc.AllowOutsideDrag
	if sc.SampleWindow > 0 {
		o.SampleWindow = sc.SampleWindow
	}
	if sc.FrameRate > 0 {
		o.FrameRate = sc.FrameRate
	}
	return o
}
