// Package config loads runtime settings from TOML, BACKDROP_* environment variables and defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/backdrop/constant"
	"github.com/spf13/viper"
)

// ErrInvalid marks a configuration value outside its accepted range
var ErrInvalid = errors.New("invalid configuration")

// Surface names
const (
	SurfaceTerminal = "terminal"
	SurfaceWindow   = "window"
	SurfaceSnapshot = "snapshot"
)

const (
	// DefaultPath is read when present, its absence is not an error
	DefaultPath = "backdrop.toml"

	envPrefix = "BACKDROP"

	maxPixelRatio = 8.0
)

// Snapshot configures the headless PNG renderer
type Snapshot struct {
	Output  string `mapstructure:"output"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Frames  int    `mapstructure:"frames"`
	Caption string `mapstructure:"caption"`
}

// Config is the complete runtime configuration
type Config struct {
	Surface          string   `mapstructure:"surface"`
	FPS              int      `mapstructure:"fps"`
	Seed             int64    `mapstructure:"seed"`
	DevicePixelRatio float64  `mapstructure:"device_pixel_ratio"`
	Ambience         bool     `mapstructure:"ambience"`
	AmbienceVolume   float64  `mapstructure:"ambience_volume"`
	Debug            bool     `mapstructure:"debug"`
	Snapshot         Snapshot `mapstructure:"snapshot"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("surface", SurfaceTerminal)
	v.SetDefault("fps", constant.DefaultFPS)
	v.SetDefault("seed", 0)
	v.SetDefault("device_pixel_ratio", constant.MaxPixelRatio)
	v.SetDefault("ambience", false)
	v.SetDefault("ambience_volume", -2.0)
	v.SetDefault("debug", false)
	v.SetDefault("snapshot.output", constant.SnapshotOutput)
	v.SetDefault("snapshot.width", constant.SnapshotWidth)
	v.SetDefault("snapshot.height", constant.SnapshotHeight)
	v.SetDefault("snapshot.frames", constant.SnapshotFrames)
	v.SetDefault("snapshot.caption", "")
}

// Default returns the built-in configuration
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("config: decode defaults: %v", err)
	}
	return cfg
}

// Load reads path over the defaults and applies environment overrides
// A missing file is an error only when required
func Load(path string, required bool) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config decode: %w", err)
	}
	return cfg, nil
}

// Validate rejects unknown surfaces and out of range numbers
func (c Config) Validate() error {
	switch c.Surface {
	case SurfaceTerminal, SurfaceWindow, SurfaceSnapshot:
	default:
		return fmt.Errorf("surface %q: %w", c.Surface, ErrInvalid)
	}
	if c.FPS < constant.MinFPS || c.FPS > constant.MaxFPS {
		return fmt.Errorf("fps %d outside %d..%d: %w", c.FPS, constant.MinFPS, constant.MaxFPS, ErrInvalid)
	}
	if c.DevicePixelRatio <= 0 || c.DevicePixelRatio > maxPixelRatio {
		return fmt.Errorf("device_pixel_ratio %v outside (0, %v]: %w", c.DevicePixelRatio, maxPixelRatio, ErrInvalid)
	}
	if c.Surface == SurfaceSnapshot {
		s := c.Snapshot
		if s.Output == "" {
			return fmt.Errorf("snapshot output empty: %w", ErrInvalid)
		}
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("snapshot size %dx%d: %w", s.Width, s.Height, ErrInvalid)
		}
		if s.Frames < 1 {
			return fmt.Errorf("snapshot frames %d: %w", s.Frames, ErrInvalid)
		}
	}
	return nil
}

// FrameInterval is the refresh period for the configured rate
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constant.DefaultFrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}
