// Package config loads the settings of the scene runner.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/60-de-QI/vulqian"
	"github.com/60-de-QI/vulqian/systems"
)

// Config is the root of the YAML document.
type Config struct {
	MaxEntities int    `yaml:"max_entities"`
	LogLevel    string `yaml:"log_level"`
	Scene       Scene  `yaml:"scene"`
}

// Scene describes the demo scene.
type Scene struct {
	Cubes     int        `yaml:"cubes"`
	Seed      int64      `yaml:"seed"`
	Frames    int        `yaml:"frames"`
	FrameTime float32    `yaml:"frame_time"`
	Camera    [3]float32 `yaml:"camera"`
	Lights    []Light    `yaml:"lights"`
}

// Light is one point light of the scene.
type Light struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Radius    float32    `yaml:"radius"`
}

// Default returns the settings of the engine's sample scene.
func Default() Config {
	return Config{
		MaxEntities: vulqian.MaxEntities,
		LogLevel:    "info",
		Scene: Scene{
			Cubes:     400,
			Seed:      1,
			Frames:    600,
			FrameTime: 1.0 / 60,
			Camera:    [3]float32{-1, -2, 2},
			Lights: []Light{
				{Position: [3]float32{-1, -1, -1}, Color: [3]float32{1, 0.1, 0.1}, Intensity: 0.2, Radius: 0.1},
				{Position: [3]float32{1, -1, -1}, Color: [3]float32{0.1, 0.1, 1}, Intensity: 0.2, Radius: 0.1},
				{Position: [3]float32{0, -1, 1}, Color: [3]float32{0.1, 1, 0.1}, Intensity: 0.2, Radius: 0.1},
			},
		},
	}
}

// Load reads and validates the YAML file at path. Missing keys keep their
// Default value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, eris.Wrapf(err, "open config %s", path)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, eris.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// Decode reads and validates a YAML document from r.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, eris.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can build a scene.
func (c Config) Validate() error {
	if c.MaxEntities <= 0 {
		return eris.Errorf("max_entities must be positive, got %d", c.MaxEntities)
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return eris.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}
	s := c.Scene
	if s.Cubes < 0 || s.Frames < 0 {
		return eris.Errorf("scene cubes and frames must not be negative, got %d and %d", s.Cubes, s.Frames)
	}
	if s.FrameTime <= 0 {
		return eris.Errorf("scene frame_time must be positive, got %g", s.FrameTime)
	}
	// cubes, two vases, lights and the viewer
	if need := s.Cubes + len(s.Lights) + 3; need > c.MaxEntities {
		return eris.Errorf("scene needs %d entities but max_entities is %d", need, c.MaxEntities)
	}
	if len(s.Lights) > systems.MaxLights {
		return eris.Errorf("scene has %d lights, at most %d are supported", len(s.Lights), systems.MaxLights)
	}
	for i, l := range s.Lights {
		if l.Intensity < 0 || l.Radius < 0 {
			return eris.Errorf("light %d: intensity and radius must not be negative", i)
		}
	}
	return nil
}

// Logger builds a JSON logger writing to stderr at LogLevel.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}
	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, eris.Wrap(err, "build logger")
	}
	return logger, nil
}
