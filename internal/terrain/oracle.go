package terrain

import "github.com/fernvale/roadweaver/pkg/geom"

// Oracle answers continuous terrain queries. The Heightmap satisfies it;
// tests may substitute analytic fields.
type Oracle interface {
	// HeightAt returns the terrain height at a world position.
	HeightAt(x, z float64) float64
	// SlopeAt returns the slope angle in degrees at a world position.
	SlopeAt(x, z float64) float64
	// NormalAt returns the surface normal at a world position.
	NormalAt(x, z float64) geom.Vec3
}

var _ Oracle = (*Heightmap)(nil)
