package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 540
)

// Render defaults.
const (
	// DefaultRenderScale divides the window size to get the software
	// framebuffer size; the blit upscales.
	DefaultRenderScale    = 3
	DefaultRenderDistance = 2
	DefaultFovDeg         = 45.0
	NearPlane             = 0.01
	FarPlane              = 1000.0
)

// Camera movement.
const (
	MoveSpeed = 5.612 // world units per second
	MouseSens = 1000.0
)

// Config is the runtime configuration: compile-time defaults with an
// optional YAML overlay.
type Config struct {
	WindowW        int        `yaml:"window_width"`
	WindowH        int        `yaml:"window_height"`
	RenderScale    int        `yaml:"render_scale"`
	RenderDistance int        `yaml:"render_distance"`
	Seed           int64      `yaml:"seed"`
	FovDeg         float64    `yaml:"fov_deg"`
	MoveSpeed      float64    `yaml:"move_speed"`
	Spin           bool       `yaml:"spin"` // rotate the world model transform over time
	Sky            [3]float32 `yaml:"sky"`
	SnapshotPath   string     `yaml:"snapshot_path"`
}

func defaultConfig() Config {
	return Config{
		WindowW:        WindowWidth,
		WindowH:        WindowHeight,
		RenderScale:    DefaultRenderScale,
		RenderDistance: DefaultRenderDistance,
		FovDeg:         DefaultFovDeg,
		MoveSpeed:      MoveSpeed,
		Sky:            [3]float32{0.45, 0.65, 0.95},
		SnapshotPath:   "cubelet-atlas.zst",
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path.
// An empty path or a missing file yields the plain defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.WindowW <= 0 || c.WindowH <= 0 {
		return fmt.Errorf("window size %dx%d", c.WindowW, c.WindowH)
	}
	if c.RenderScale < 1 {
		c.RenderScale = 1
	}
	if c.RenderDistance < 1 {
		return fmt.Errorf("render distance %d", c.RenderDistance)
	}
	if c.FovDeg <= 0 || c.FovDeg >= 180 {
		return fmt.Errorf("fov %v", c.FovDeg)
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = MoveSpeed
	}
	return nil
}
