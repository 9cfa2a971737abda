// Command scene builds the engine's sample scene and steps it headlessly,
// logging what the renderer would receive each frame.
//
//	go run ./cmd/scene -config config/scene.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/60-de-QI/vulqian/config"
)

func main() {
	path := flag.String("config", "", "YAML settings file; defaults are used when empty")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(1)
		}
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	s := newScene(cfg, logger)
	stats := s.run(cfg.Scene.Frames, cfg.Scene.FrameTime)
	logger.Info("scene finished",
		zap.Int("frames", stats.frames),
		zap.Int("entities", s.c.Living()),
		zap.Int("draws", stats.draws),
		zap.Int("transparent", stats.transparent),
		zap.Int("lights", stats.lights))
}
