package roads

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/fernvale/roadweaver/internal/config"
	"github.com/fernvale/roadweaver/internal/logger"
	"github.com/fernvale/roadweaver/internal/terrain"
)

// ErrNoOracle means terrain queries are impossible, so no meaningful
// output can be produced. This is the only condition that aborts the
// whole pipeline; everything else degrades to a smaller network.
var ErrNoOracle = errors.New("pipeline: terrain heightmap is required")

// Pipeline runs the road stages strictly in order: candidates, MST,
// loops, realization, classification, carving, re-snap. It owns the one
// seeded rng; stages consume its stream in a fixed call order, so a
// seed fully determines the output.
type Pipeline struct {
	cfg      *config.Config
	field    *terrain.Heightmap
	realizer PathRealizer
	rng      *rand.Rand

	// Seed is the effective seed after zero-value defaulting.
	Seed int64

	Waypoints []Waypoint
	Zones     []terrain.CrossingZone
	Roads     []*Road
	Stats     Stats
}

// New wires a pipeline over the shared heightmap. zones may carry
// pre-registered water crossings; more are detected during realization.
// A nil realizer gets the default terrain-following one.
func New(cfg *config.Config, field *terrain.Heightmap, waypoints []Waypoint, zones []terrain.CrossingZone, realizer PathRealizer) *Pipeline {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if realizer == nil {
		realizer = &TerrainRealizer{Oracle: field, SeaLevel: cfg.World.SeaLevel}
	}

	return &Pipeline{
		cfg:       cfg,
		field:     field,
		realizer:  realizer,
		rng:       rand.New(rand.NewSource(seed)),
		Seed:      seed,
		Waypoints: waypoints,
		Zones:     zones,
	}
}

// Generate runs the full pipeline. Failures are local: missing
// waypoints leave the road list empty, degenerate topology shrinks it,
// and per-road defects skip that road only. Only an absent heightmap
// fails the run.
func (p *Pipeline) Generate() error {
	if p.field.Empty() {
		return ErrNoOracle
	}

	p.Stats = Stats{ByClass: map[RoadClass]int{}}
	p.Stats.Waypoints = len(p.Waypoints)

	if len(p.Waypoints) == 0 {
		logger.Warn("no waypoints supplied, skipping road generation")
		return nil
	}

	final := p.buildTopology()
	p.realizeRoads(final)
	p.carve()

	logger.Info("road network generated",
		zap.Int("waypoints", p.Stats.Waypoints),
		zap.Int("candidates", p.Stats.CandidateEdges),
		zap.Int("mst", p.Stats.MSTEdges),
		zap.Int("loops", p.Stats.LoopEdges),
		zap.Int("roads", p.Stats.Roads),
		zap.Int("bridges", p.Stats.Bridges),
		zap.Int("carved_cells", p.Stats.CarvedCells),
	)

	return nil
}

// buildTopology runs candidates, MST and loop augmentation, returning
// the final edge list in processing order (MST edges first).
func (p *Pipeline) buildTopology() []Edge {
	cands := BuildCandidates(p.Waypoints, p.field, p.cfg.World.SeaLevel, p.cfg.Graph.Neighbors)
	p.Stats.CandidateEdges = len(cands)

	mst := BuildMST(cands, len(p.Waypoints))
	p.Stats.MSTEdges = len(mst)
	if len(mst) < len(p.Waypoints)-1 {
		logger.Warn("candidate graph is disconnected, producing a partial network",
			zap.Int("mst_edges", len(mst)),
			zap.Int("waypoints", len(p.Waypoints)),
		)
	}

	final := AugmentLoops(mst, cands, p.cfg.Graph.LoopDensity, p.rng)
	p.Stats.LoopEdges = len(final) - len(mst)

	return final
}

// realizeRoads turns edges into classified roads and registers any
// water crossings discovered along their paths.
func (p *Pipeline) realizeRoads(edges []Edge) {
	opts := RealizeOptions{
		Smooth:          p.cfg.Realize.Smooth,
		AllowBridges:    p.cfg.Realize.AllowBridges,
		GridResolution:  p.cfg.Realize.GridResolution,
		LandOffset:      p.cfg.Realize.LandOffset,
		BridgeClearance: p.cfg.Realize.BridgeClearance,
	}

	for _, e := range edges {
		from := p.Waypoints[e.Key.A]
		to := p.Waypoints[e.Key.B]

		path := p.realizer.Realize(from.Position, to.Position, opts)
		if len(path) < 2 {
			logger.Warn("realizer returned a degenerate path, skipping road",
				zap.Int("from", e.Key.A),
				zap.Int("to", e.Key.B),
			)
			continue
		}

		road := &Road{Path: path, From: e.Key.A, To: e.Key.B}
		ClassifyRoad(road, p.cfg.Classify.HighwayLength, p.cfg.Classify.ArterialLength)

		p.Zones = append(p.Zones, terrain.DetectCrossings(p.field, path)...)
		p.Roads = append(p.Roads, road)
	}
}

// carve reshapes the heightmap under the realized roads and finalizes
// per-class stats. Roads are processed in list order for reproducibility.
func (p *Pipeline) carve() {
	carver := NewCarver(p.field, carveParams(p.cfg.Carve), p.Zones)

	carved, err := carver.CarveAll(p.Roads)
	if err != nil {
		// Leave the terrain untouched rather than half-carved.
		logger.Warn("carving skipped", zap.Error(err))
	}
	p.Stats.CarvedCells = carved

	p.Stats.Roads = len(p.Roads)
	for _, r := range p.Roads {
		p.Stats.ByClass[r.Class]++
		if r.Bridge {
			p.Stats.Bridges++
		}
	}
}

// carveParams maps the config section onto carver parameters.
func carveParams(c config.CarveConfig) CarveParams {
	return CarveParams{
		WidthMultiplier: c.WidthMultiplier,
		BlendDistance:   c.BlendDistance,
		SampleSpacing:   c.SampleSpacing,
		MaxDepth:        c.MaxDepth,
		EmbankmentSlope: c.EmbankmentSlope,
		Drainage:        c.Drainage,
		Clearance:       c.Clearance,
	}
}
