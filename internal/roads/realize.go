package roads

import (
	"math"

	"github.com/fernvale/roadweaver/internal/terrain"
	"github.com/fernvale/roadweaver/pkg/geom"
)

// RealizeOptions tunes path realization.
type RealizeOptions struct {
	Smooth          bool
	AllowBridges    bool
	GridResolution  float64 // spacing of realized points, world units
	LandOffset      float64 // road bed height above terrain
	BridgeClearance float64 // deck height above sea level
}

// PathRealizer converts a graph edge into a terrain-following polyline.
// Implementations must return at least two points; the per-point Y is
// authoritative for the carver (terrain plus offset on land, sea level
// plus clearance on bridge decks).
type PathRealizer interface {
	Realize(from, to geom.Vec3, opts RealizeOptions) []geom.Vec3
}

// TerrainRealizer is the default realizer: it subdivides the straight
// segment at grid resolution and snaps each point to the terrain, or to
// a bridge deck over water. It performs no search; callers wanting
// cost-aware detours substitute their own PathRealizer.
type TerrainRealizer struct {
	Oracle   terrain.Oracle
	SeaLevel float64
}

// Realize implements PathRealizer.
func (tr *TerrainRealizer) Realize(from, to geom.Vec3, opts RealizeOptions) []geom.Vec3 {
	res := opts.GridResolution
	if res <= 0 {
		res = 6
	}

	dist := from.DistanceXZ(to)
	steps := int(math.Ceil(dist / res))
	if steps < 1 || tr.Oracle == nil {
		// Straight-line fallback keeps the two-point contract.
		return []geom.Vec3{tr.snap(from, opts), tr.snap(to, opts)}
	}

	path := make([]geom.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		path = append(path, from.LerpTo(to, t))
	}

	if opts.Smooth {
		path = smoothPath(path)
	}

	for i := range path {
		path[i] = tr.snap(path[i], opts)
	}

	return path
}

// snap sets the authoritative Y for a point: road bed above terrain on
// land, bridge deck above sea level over water.
func (tr *TerrainRealizer) snap(p geom.Vec3, opts RealizeOptions) geom.Vec3 {
	if tr.Oracle == nil {
		return p
	}
	h := tr.Oracle.HeightAt(p.X, p.Z)
	if h < tr.SeaLevel && opts.AllowBridges {
		p.Y = tr.SeaLevel + opts.BridgeClearance
	} else {
		p.Y = h + opts.LandOffset
	}
	return p
}

// smoothPath applies one midpoint-averaging pass to interior points.
// Endpoints stay fixed so the road still meets its waypoints.
func smoothPath(path []geom.Vec3) []geom.Vec3 {
	if len(path) < 3 {
		return path
	}
	out := make([]geom.Vec3, len(path))
	out[0] = path[0]
	out[len(path)-1] = path[len(path)-1]
	for i := 1; i < len(path)-1; i++ {
		out[i] = path[i-1].Add(path[i]).Add(path[i+1]).Scale(1.0 / 3.0)
	}
	return out
}
