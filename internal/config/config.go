// Package config loads the demo's YAML settings and watches them for changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blockman/internal/sim"
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Skin      string          `yaml:"skin"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Angle    float64 `yaml:"angle"`
	Distance float64 `yaml:"distance"`
}

type AnimationConfig struct {
	Step float64 `yaml:"step"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings the demo runs with when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "Blockman", VSync: true},
		Camera: CameraConfig{
			Angle:    sim.DefaultCameraAngle,
			Distance: sim.DefaultCameraDistance,
		},
		Animation: AnimationConfig{Step: sim.DefaultAnimStep},
		Skin:      "boy",
		Audio:     AudioConfig{Enabled: true, Volume: 0.5},
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Angle < sim.MinCameraAngle || c.Camera.Angle > sim.MaxCameraAngle {
		errs = append(errs, fmt.Errorf("camera.angle %v outside [%v, %v]", c.Camera.Angle, sim.MinCameraAngle, sim.MaxCameraAngle))
	}
	if c.Camera.Distance < sim.MinCameraDistance || c.Camera.Distance > sim.MaxCameraDistance {
		errs = append(errs, fmt.Errorf("camera.distance %v outside [%v, %v]", c.Camera.Distance, sim.MinCameraDistance, sim.MaxCameraDistance))
	}
	if c.Animation.Step < sim.MinAnimStep || c.Animation.Step > sim.MaxAnimStep {
		errs = append(errs, fmt.Errorf("animation.step %v outside [%v, %v]", c.Animation.Step, sim.MinAnimStep, sim.MaxAnimStep))
	}
	if _, err := c.StartSkin(); err != nil {
		errs = append(errs, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [0, 1]", c.Audio.Volume))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// StartSkin parses the skin name.
func (c *Config) StartSkin() (sim.Skin, error) {
	switch c.Skin {
	case "", "boy":
		return sim.SkinBoy, nil
	case "girl":
		return sim.SkinGirl, nil
	}
	return sim.SkinBoy, fmt.Errorf("unknown skin %q", c.Skin)
}

// CameraState converts the camera section to the simulation type.
func (c *Config) CameraState() sim.Camera {
	return sim.Camera{Angle: c.Camera.Angle, Distance: c.Camera.Distance}
}
