package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Topology defaults
	if cfg.Graph.Neighbors != 4 {
		t.Errorf("expected 4 neighbors, got %d", cfg.Graph.Neighbors)
	}
	if cfg.Graph.LoopDensity != 2.5 {
		t.Errorf("expected loop density 2.5, got %f", cfg.Graph.LoopDensity)
	}

	// Classification defaults
	if cfg.Classify.HighwayLength != 5000 {
		t.Errorf("expected highway length 5000, got %f", cfg.Classify.HighwayLength)
	}
	if cfg.Classify.ArterialLength != 1000 {
		t.Errorf("expected arterial length 1000, got %f", cfg.Classify.ArterialLength)
	}

	// Carve defaults
	if cfg.Carve.WidthMultiplier != 1.5 {
		t.Errorf("expected width multiplier 1.5, got %f", cfg.Carve.WidthMultiplier)
	}
	if cfg.Carve.BlendDistance != 8 {
		t.Errorf("expected blend distance 8, got %f", cfg.Carve.BlendDistance)
	}
	if cfg.Carve.SampleSpacing != 3 {
		t.Errorf("expected sample spacing 3, got %f", cfg.Carve.SampleSpacing)
	}
	if !cfg.Carve.Drainage {
		t.Error("expected drainage enabled by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "roadweaver.yaml")

	yamlContent := `
world:
  size: 256
  sea_level: 2
graph:
  neighbors: 6
carve:
  drainage: false
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.World.Size != 256 {
		t.Errorf("expected size 256, got %d", cfg.World.Size)
	}
	if cfg.World.SeaLevel != 2 {
		t.Errorf("expected sea level 2, got %f", cfg.World.SeaLevel)
	}
	if cfg.Graph.Neighbors != 6 {
		t.Errorf("expected 6 neighbors, got %d", cfg.Graph.Neighbors)
	}
	if cfg.Carve.Drainage {
		t.Error("expected drainage disabled by file override")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Values not in the file keep their defaults
	if cfg.Graph.LoopDensity != 2.5 {
		t.Errorf("expected loop density default 2.5, got %f", cfg.Graph.LoopDensity)
	}
}

func TestApplyLimits(t *testing.T) {
	cfg := Default()
	cfg.Graph.Neighbors = 0
	cfg.Graph.LoopDensity = -1
	cfg.Carve.MaxDepth = 50
	cfg.Carve.EmbankmentSlope = 0.05
	cfg.Carve.SampleSpacing = 0
	cfg.World.Size = 1

	cfg.applyLimits()

	if cfg.Graph.Neighbors != 1 {
		t.Errorf("expected neighbors clamped to 1, got %d", cfg.Graph.Neighbors)
	}
	if cfg.Graph.LoopDensity != 0 {
		t.Errorf("expected loop density clamped to 0, got %f", cfg.Graph.LoopDensity)
	}
	if cfg.Carve.MaxDepth != 12 {
		t.Errorf("expected max depth clamped to 12, got %f", cfg.Carve.MaxDepth)
	}
	if cfg.Carve.EmbankmentSlope != 0.3 {
		t.Errorf("expected embankment slope clamped to 0.3, got %f", cfg.Carve.EmbankmentSlope)
	}
	if cfg.Carve.SampleSpacing != 3 {
		t.Errorf("expected sample spacing reset to 3, got %f", cfg.Carve.SampleSpacing)
	}
	if cfg.World.Size != 2 {
		t.Errorf("expected size clamped to 2, got %d", cfg.World.Size)
	}
}

func TestSaveTo(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sub", "roadweaver.yaml")

	cfg := Default()
	cfg.World.Seed = 42

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.World.Seed != 42 {
		t.Errorf("expected seed 42 after round trip, got %d", loaded.World.Seed)
	}
}
