// Package config handles world generation configuration loading and management.
package config

// Config holds all generation settings.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Graph    GraphConfig    `yaml:"graph"`
	Classify ClassifyConfig `yaml:"classify"`
	Realize  RealizeConfig  `yaml:"realize"`
	Carve    CarveConfig    `yaml:"carve"`
	Noise    NoiseConfig    `yaml:"noise"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorldConfig holds the heightmap dimensions and seeding.
type WorldConfig struct {
	Size      int     `yaml:"size"`       // heightmap cells per side
	CellSize  float64 `yaml:"cell_size"`  // world units per cell
	SeaLevel  float64 `yaml:"sea_level"`  // heights below this are water
	Seed      int64   `yaml:"seed"`       // 0 picks a time-based seed
	Waypoints int     `yaml:"waypoints"`  // points of interest to place
	Spacing   float64 `yaml:"spacing"`    // minimum distance between waypoints
}

// GraphConfig holds road topology construction settings.
type GraphConfig struct {
	Neighbors   int     `yaml:"neighbors"`    // k cheapest neighbors per waypoint
	LoopDensity float64 `yaml:"loop_density"` // redundancy edges as a multiple of MST size
}

// ClassifyConfig holds the road hierarchy length thresholds.
// Thresholds are exclusive: a road of exactly threshold length
// falls into the lower class.
type ClassifyConfig struct {
	HighwayLength  float64 `yaml:"highway_length"`
	ArterialLength float64 `yaml:"arterial_length"`
}

// RealizeConfig holds path realization settings.
type RealizeConfig struct {
	GridResolution  float64 `yaml:"grid_resolution"`  // spacing of realized path points
	Smooth          bool    `yaml:"smooth"`           // midpoint-smooth realized paths
	AllowBridges    bool    `yaml:"allow_bridges"`    // permit water crossings
	LandOffset      float64 `yaml:"land_offset"`      // road bed height above terrain
	BridgeClearance float64 `yaml:"bridge_clearance"` // deck height above sea level
}

// CarveConfig holds terrain carving settings.
type CarveConfig struct {
	WidthMultiplier float64 `yaml:"width_multiplier"` // carve width as a multiple of road width
	BlendDistance   float64 `yaml:"blend_distance"`   // falloff band beyond the carve width
	SampleSpacing   float64 `yaml:"sample_spacing"`   // path resampling interval
	MaxDepth        float64 `yaml:"max_depth"`        // deepest single cut, clamped to [8,12]
	EmbankmentSlope float64 `yaml:"embankment_slope"` // edge taper ratio, clamped to [0.3,0.5]
	Drainage        bool    `yaml:"drainage"`         // cut channels alongside roads
	Clearance       float64 `yaml:"clearance"`        // road height above carved ground
}

// NoiseConfig holds fractal noise parameters for heightmap synthesis.
type NoiseConfig struct {
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Amplitude   float64 `yaml:"amplitude"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	BaseHeight  float64 `yaml:"base_height"`
}

// OutputConfig holds export destinations.
type OutputConfig struct {
	RoadsJSON string `yaml:"roads_json"`
	MapPNG    string `yaml:"map_png"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Size:      512,
			CellSize:  4,
			SeaLevel:  0,
			Seed:      0,
			Waypoints: 24,
			Spacing:   120,
		},
		Graph: GraphConfig{
			Neighbors:   4,
			LoopDensity: 2.5,
		},
		Classify: ClassifyConfig{
			HighwayLength:  5000,
			ArterialLength: 1000,
		},
		Realize: RealizeConfig{
			GridResolution:  6,
			Smooth:          true,
			AllowBridges:    true,
			LandOffset:      0.3,
			BridgeClearance: 4,
		},
		Carve: CarveConfig{
			WidthMultiplier: 1.5,
			BlendDistance:   8,
			SampleSpacing:   3,
			MaxDepth:        10,
			EmbankmentSlope: 0.4,
			Drainage:        true,
			Clearance:       0.3,
		},
		Noise: NoiseConfig{
			Octaves:     6,
			Frequency:   0.0035,
			Amplitude:   42,
			Persistence: 0.5,
			Lacunarity:  2.0,
			BaseHeight:  6,
		},
		Output: OutputConfig{
			RoadsJSON: "roads.json",
			MapPNG:    "worldmap.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// applyLimits clamps out-of-range values back to usable ones rather
// than failing the run.
func (c *Config) applyLimits() {
	if c.World.Size < 2 {
		c.World.Size = 2
	}
	if c.World.CellSize <= 0 {
		c.World.CellSize = 1
	}
	if c.Graph.Neighbors < 1 {
		c.Graph.Neighbors = 1
	}
	if c.Graph.LoopDensity < 0 {
		c.Graph.LoopDensity = 0
	}
	if c.Carve.MaxDepth < 8 {
		c.Carve.MaxDepth = 8
	}
	if c.Carve.MaxDepth > 12 {
		c.Carve.MaxDepth = 12
	}
	if c.Carve.EmbankmentSlope < 0.3 {
		c.Carve.EmbankmentSlope = 0.3
	}
	if c.Carve.EmbankmentSlope > 0.5 {
		c.Carve.EmbankmentSlope = 0.5
	}
	if c.Carve.SampleSpacing <= 0 {
		c.Carve.SampleSpacing = 3
	}
	if c.Carve.BlendDistance < 0 {
		c.Carve.BlendDistance = 0
	}
	if c.Realize.GridResolution <= 0 {
		c.Realize.GridResolution = 6
	}
}
