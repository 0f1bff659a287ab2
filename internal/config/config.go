// Package config holds the viewer host configuration.
package config

import (
	"fmt"

	"dacti/bootstrap"
	"dacti/hal"

	"github.com/caarlos0/env/v11"
)

// Config is read from DACTI_* environment variables; command line flags
// override it.
type Config struct {
	Module       string                `env:"DACTI_MODULE" envDefault:"triangle"`
	Canvas       string                `env:"DACTI_CANVAS" envDefault:"viewer"`
	SurfaceName  string                `env:"DACTI_SURFACE" envDefault:"viewer"`
	Width        int                   `env:"DACTI_WIDTH" envDefault:"800"`
	Height       int                   `env:"DACTI_HEIGHT" envDefault:"600"`
	Headless     bool                  `env:"DACTI_HEADLESS"`
	Hz           int                   `env:"DACTI_HZ" envDefault:"60"`
	Ticks        uint64                `env:"DACTI_TICKS"`
	OnFrameError bootstrap.FramePolicy `env:"DACTI_ON_FRAME_ERROR" envDefault:"halt"`
	Snapshot     string                `env:"DACTI_SNAPSHOT"`
	Scale        int                   `env:"DACTI_SCALE" envDefault:"1"`
	HUD          bool                  `env:"DACTI_HUD" envDefault:"true"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Module == "":
		return fmt.Errorf("module name is empty")
	case c.Canvas == "":
		return fmt.Errorf("canvas name is empty")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid surface size %dx%d", c.Width, c.Height)
	case c.Hz <= 0:
		return fmt.Errorf("invalid hz: %d", c.Hz)
	case c.Scale <= 0:
		return fmt.Errorf("invalid scale: %d", c.Scale)
	}
	return nil
}

// Host returns the host HAL configuration: one surface of the configured size.
func (c Config) Host() hal.HostConfig {
	return hal.HostConfig{
		Surfaces: []hal.SurfaceConfig{{Name: c.SurfaceName, Width: c.Width, Height: c.Height}},
	}
}

// Bootstrap returns the sequencer configuration.
func (c Config) Bootstrap() bootstrap.Config {
	return bootstrap.Config{
		Module:       c.Module,
		Surface:      c.Canvas,
		OnFrameError: c.OnFrameError,
	}
}
