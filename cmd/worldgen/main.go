// Package main is the entry point for the Roadweaver world generator.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/fernvale/roadweaver/internal/config"
	"github.com/fernvale/roadweaver/internal/logger"
	"github.com/fernvale/roadweaver/internal/render"
	"github.com/fernvale/roadweaver/internal/roads"
	"github.com/fernvale/roadweaver/internal/terrain"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Roadweaver ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("world generation complete")
}

// run synthesizes terrain, generates the road network over it, and
// writes the configured outputs.
func run(cfg *config.Config) error {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.World.Seed = seed
	}

	field := terrain.Synthesize(cfg.World.Size, cfg.World.CellSize, cfg.World.SeaLevel, seed, noiseParams(cfg.Noise))
	logger.Info("terrain synthesized",
		zap.Int("size", field.Size),
		zap.Float64("cell_size", field.CellSize),
		zap.Int64("seed", seed),
	)

	supplier := roads.NewTerrainSupplier(field, seed, cfg.World.Waypoints, cfg.World.Spacing)

	pipeline := roads.New(cfg, field, supplier.Waypoints(), nil, nil)
	if err := pipeline.Generate(); err != nil {
		return err
	}

	if out := cfg.Output.RoadsJSON; out != "" {
		doc := render.NewDocument(pipeline, field)
		if err := doc.Save(out); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		logger.Info("road network exported", zap.String("path", out))
	}

	if out := cfg.Output.MapPNG; out != "" {
		r := render.New(field, nil)
		if err := r.SavePNG(out, pipeline.Roads, pipeline.Waypoints); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		logger.Info("overview map written", zap.String("path", out))
	}

	return nil
}

// noiseParams maps the config section onto synthesis parameters.
func noiseParams(c config.NoiseConfig) terrain.NoiseParams {
	return terrain.NoiseParams{
		Octaves:     c.Octaves,
		Frequency:   c.Frequency,
		Amplitude:   c.Amplitude,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
		BaseHeight:  c.BaseHeight,
	}
}
