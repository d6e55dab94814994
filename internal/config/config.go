// Package config holds the application settings, persisted as TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the commands look for a config file, relative to the
// working directory.
const DefaultPath = "rigidsim.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Physics PhysicsConfig `toml:"physics"`
	Scene   SceneConfig   `toml:"scene"`
	Stream  StreamConfig  `toml:"stream"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	TargetFPS int32  `toml:"target_fps"`
}

type PhysicsConfig struct {
	Gravity           [3]float32 `toml:"gravity"`
	TimeStep          float32    `toml:"time_step"`
	GravityEnabled    bool       `toml:"gravity_enabled"`
	Collisions        bool       `toml:"collisions"`
	CollisionResponse bool       `toml:"collision_response"`
}

type SceneConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"` // reload the scene when the file changes
}

type StreamConfig struct {
	Addr       string `toml:"addr"`
	IntervalMS int    `toml:"interval_ms"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "rigidsim",
			Width:     1280,
			Height:    720,
			TargetFPS: 120,
		},
		Physics: PhysicsConfig{
			Gravity:           [3]float32{0, -2, 0},
			TimeStep:          physics.DefaultTimeStep,
			GravityEnabled:    true,
			Collisions:        true,
			CollisionResponse: true,
		},
		Scene: SceneConfig{
			Path:  "scenes/drop.json",
			Watch: true,
		},
		Stream: StreamConfig{
			Addr:       ":8089",
			IntervalMS: 50,
		},
	}
}

// Load reads the config at path. Keys the file leaves out keep their
// defaults. A missing file is not an error: Default() is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if !(c.Physics.TimeStep > 0) {
		return fmt.Errorf("physics.time_step must be positive, got %v", c.Physics.TimeStep)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Stream.IntervalMS <= 0 {
		return fmt.Errorf("stream.interval_ms must be positive, got %d", c.Stream.IntervalMS)
	}
	return nil
}

func (p PhysicsConfig) GravityVector() rl.Vector3 {
	return rl.Vector3{X: p.Gravity[0], Y: p.Gravity[1], Z: p.Gravity[2]}
}

// NewWorld builds a physics world from the settings.
func (p PhysicsConfig) NewWorld() *physics.World {
	w := physics.NewWorld(p.GravityVector(), p.TimeStep)
	p.Apply(w)
	return w
}

// Apply copies gravity, step and toggles onto w.
func (p PhysicsConfig) Apply(w *physics.World) {
	w.Gravity = p.GravityVector()
	if p.TimeStep > 0 {
		w.TimeStep = p.TimeStep
	}
	w.Properties = physics.Properties{
		Gravity:           p.GravityEnabled,
		Collisions:        p.Collisions,
		CollisionResponse: p.CollisionResponse,
	}
}

func (s StreamConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}
