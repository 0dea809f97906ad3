package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed        int64             `yaml:"seed"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	World       WorldConfig       `yaml:"world"`
	GravityWell GravityWellConfig `yaml:"gravity_well"`
	Missions    MissionsConfig    `yaml:"missions"`
	Window      WindowConfig      `yaml:"window"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SimulationConfig controls the tick driver.
type SimulationConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	TimeScale    float64       `yaml:"time_scale"`
	BoostScale   float64       `yaml:"boost_scale"`
}

// WorldConfig holds the fallback orbit center used by parentless bodies.
type WorldConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

type GravityWellConfig struct {
	InfluenceRadius float64 `yaml:"influence_radius"`
	DestroyRadius   float64 `yaml:"destroy_radius"`
	Strength        float64 `yaml:"strength"`
}

type MissionsConfig struct {
	BatchSize int `yaml:"batch_size"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	JSONFormat bool   `yaml:"json_format"`
}

// Default returns the stock tuning: 50ms ticks, an 800/35/900 gravity well
// and a canvas centered on (400, 300).
func Default() Config {
	return Config{
		Seed: 0,
		Simulation: SimulationConfig{
			TickInterval: 50 * time.Millisecond,
			TimeScale:    1.0,
			BoostScale:   4.0,
		},
		World: WorldConfig{
			CenterX: 400,
			CenterY: 300,
		},
		GravityWell: GravityWellConfig{
			InfluenceRadius: 800,
			DestroyRadius:   35,
			Strength:        900,
		},
		Missions: MissionsConfig{
			BatchSize: 5,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Space Mission Simulator",
		},
		Logging: LoggingConfig{
			Level:      "info",
			JSONFormat: false,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Simulation.TickInterval <= 0 {
		return fmt.Errorf("simulation.tick_interval must be positive")
	}
	if c.Simulation.TimeScale < 0 {
		return fmt.Errorf("simulation.time_scale must not be negative")
	}
	if c.GravityWell.DestroyRadius < 0 || c.GravityWell.InfluenceRadius < c.GravityWell.DestroyRadius {
		return fmt.Errorf("gravity_well radii must satisfy 0 <= destroy_radius <= influence_radius")
	}
	if c.Missions.BatchSize < 0 {
		return fmt.Errorf("missions.batch_size must not be negative")
	}
	return nil
}
