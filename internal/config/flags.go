package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Int64("seed", 0, "World seed (0 = time based)")
	flagSize   = flag.Int("size", 0, "Heightmap cells per side")
	flagOut    = flag.String("out", "", "Road list JSON output path")
	flagMap    = flag.String("map", "", "Debug map PNG output path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagSize > 0 {
		cfg.World.Size = *flagSize
	}
	if *flagOut != "" {
		cfg.Output.RoadsJSON = *flagOut
	}
	if *flagMap != "" {
		cfg.Output.MapPNG = *flagMap
	}
}
