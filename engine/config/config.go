package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAspect    = 16.0 / 9.0
	DefaultTickRate  = 60.0
	DefaultWorkers   = 4
	DefaultQueueSize = 256
	DefaultRadius    = 1
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	TickRate float64 `yaml:"tick_rate"`
	Profiler bool    `yaml:"profiler"`
	LogLevel string  `yaml:"log_level"`
	// Aspect is the viewport width over height every space camera projects with.
	Aspect float32      `yaml:"aspect"`
	Tiles  TilesConfig  `yaml:"tiles"`
	Spaces SpacesConfig `yaml:"spaces"`
}

// TilesConfig configures the tile controllers shared by every space.
type TilesConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
	// Radius is the number of neighbour tiles requested on each side of the focus tile.
	Radius int `yaml:"radius"`
}

type SpacesConfig struct {
	Globe   SpaceConfig `yaml:"globe"`
	Surface SpaceConfig `yaml:"surface"`
	Detail  SpaceConfig `yaml:"detail"`
}

// SpaceConfig holds the framing of one view space.
type SpaceConfig struct {
	// Fov is the camera field of view in degrees restored on entry.
	Fov float32 `yaml:"fov"`
	// Zoom is the tile zoom level streamed by the space.
	Zoom uint32 `yaml:"zoom"`
	// Radius is the globe radius in scene units (globe only).
	Radius float32 `yaml:"radius,omitempty"`
	// Height is the camera distance from the focus point in meters (surface and detail).
	Height float32 `yaml:"height,omitempty"`
	// Pitch is the camera elevation angle in radians; zero means straight down.
	Pitch float32 `yaml:"pitch,omitempty"`
	// Animation is the entry animation duration in seconds.
	Animation float32 `yaml:"animation"`
	// Near and Far are the camera clipping planes; zero keeps the camera default.
	Near float32 `yaml:"near,omitempty"`
	Far  float32 `yaml:"far,omitempty"`

	Controls ControlsConfig `yaml:"controls"`
	Sun      SunConfig      `yaml:"sun"`
}

// ControlsConfig tunes how gestures move the camera. Zero keeps the controller default.
type ControlsConfig struct {
	OrbitSpeed       float32 `yaml:"orbit_speed,omitempty"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity,omitempty"`
	PanSpeed         float32 `yaml:"pan_speed,omitempty"`
}

// SunConfig is the directional light a space applies when entered.
type SunConfig struct {
	Color     [3]float32 `yaml:"color,flow"`
	Intensity float32    `yaml:"intensity"`
}

func DefaultConfig() *Config {
	return &Config{
		TickRate: DefaultTickRate,
		LogLevel: "info",
		Aspect:   DefaultAspect,
		Tiles: TilesConfig{
			Workers:   DefaultWorkers,
			QueueSize: DefaultQueueSize,
			Radius:    DefaultRadius,
		},
		Spaces: SpacesConfig{
			Globe: SpaceConfig{
				Fov: 60, Zoom: 2, Radius: 300, Animation: 1,
				Near: 1, Far: 1e4,
				Controls: ControlsConfig{OrbitSpeed: 0.03, MouseSensitivity: 0.005},
				Sun:      SunConfig{Color: [3]float32{1, 1, 1}, Intensity: 1},
			},
			Surface: SpaceConfig{
				Fov: 60, Zoom: 14, Height: 500, Animation: 1,
				Near: 1, Far: 1e5,
				Controls: ControlsConfig{MouseSensitivity: 0.005, PanSpeed: 1},
				Sun:      SunConfig{Color: [3]float32{1, 0.98, 0.94}, Intensity: 1},
			},
			Detail: SpaceConfig{
				Fov: 45, Zoom: 17, Height: 40, Pitch: 0.6, Animation: 0.5,
				Near: 0.1, Far: 1e4,
				Controls: ControlsConfig{MouseSensitivity: 0.003, PanSpeed: 0.5},
				Sun:      SunConfig{Color: [3]float32{1, 0.95, 0.85}, Intensity: 1.2},
			},
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
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

// Validate checks every setting is within a usable range.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return errors.Wrapf(ErrInvalid, "tick_rate must be positive, got %v", c.TickRate)
	}
	if c.Tiles.Workers <= 0 {
		return errors.Wrapf(ErrInvalid, "tiles.workers must be positive, got %d", c.Tiles.Workers)
	}
	if c.Tiles.QueueSize <= 0 {
		return errors.Wrapf(ErrInvalid, "tiles.queue_size must be positive, got %d", c.Tiles.QueueSize)
	}
	if c.Tiles.Radius < 0 {
		return errors.Wrapf(ErrInvalid, "tiles.radius must not be negative, got %d", c.Tiles.Radius)
	}
	if c.Aspect <= 0 {
		return errors.Wrapf(ErrInvalid, "aspect must be positive, got %v", c.Aspect)
	}
	for _, sp := range []struct {
		name string
		cfg  SpaceConfig
	}{
		{"globe", c.Spaces.Globe},
		{"surface", c.Spaces.Surface},
		{"detail", c.Spaces.Detail},
	} {
		if err := sp.cfg.validate(); err != nil {
			return errors.Wrapf(err, "spaces.%s", sp.name)
		}
	}
	if c.Spaces.Globe.Radius <= 0 {
		return errors.Wrapf(ErrInvalid, "spaces.globe.radius must be positive")
	}
	if c.Spaces.Surface.Height <= 0 || c.Spaces.Detail.Height <= 0 {
		return errors.Wrapf(ErrInvalid, "spaces.surface.height and spaces.detail.height must be positive")
	}
	return nil
}

func (s SpaceConfig) validate() error {
	if s.Fov <= 0 || s.Fov >= 180 {
		return errors.Wrapf(ErrInvalid, "fov must be in (0, 180), got %v", s.Fov)
	}
	if s.Zoom > 22 {
		return errors.Wrapf(ErrInvalid, "zoom must be at most 22, got %d", s.Zoom)
	}
	if s.Animation < 0 {
		return errors.Wrap(ErrInvalid, "animation must not be negative")
	}
	if s.Near < 0 || s.Far < 0 || (s.Near > 0 && s.Far > 0 && s.Near >= s.Far) {
		return errors.Wrapf(ErrInvalid, "near/far must satisfy 0 < near < far, got %v/%v", s.Near, s.Far)
	}
	if s.Controls.OrbitSpeed < 0 || s.Controls.MouseSensitivity < 0 || s.Controls.PanSpeed < 0 {
		return errors.Wrap(ErrInvalid, "controls must not be negative")
	}
	if s.Sun.Intensity < 0 {
		return errors.Wrapf(ErrInvalid, "sun.intensity must not be negative, got %v", s.Sun.Intensity)
	}
	return nil
}
