package roads

import (
	"errors"
	"math"

	"github.com/fernvale/roadweaver/internal/terrain"
	"github.com/fernvale/roadweaver/pkg/geom"
)

// ErrNoHeightmap aborts the carving phase before any mutation when the
// shared height field is missing or empty.
var ErrNoHeightmap = errors.New("carver: missing or empty heightmap")

// bridgeProbeMargin widens a crossing zone's reach when probing whether
// a road is a bridge.
const bridgeProbeMargin = 50.0

// passWeights are the sequential blend strengths. Two passes avoid the
// abrupt single-step jump a full-strength lerp would leave at the blend
// boundary.
var passWeights = [2]float64{0.7, 0.3}

// CarveParams tunes how roads reshape the terrain.
type CarveParams struct {
	WidthMultiplier float64 // carve width as a multiple of road width
	BlendDistance   float64 // falloff band beyond the carve width
	SampleSpacing   float64 // path resampling interval, world units
	MaxDepth        float64 // deepest single cut
	EmbankmentSlope float64 // cut taper ratio across the outer carve band
	Drainage        bool    // cut channels alongside each road
	Clearance       float64 // road height above carved ground after re-snap
}

// DefaultCarveParams returns the canonical carving profile.
func DefaultCarveParams() CarveParams {
	return CarveParams{
		WidthMultiplier: 1.5,
		BlendDistance:   8,
		SampleSpacing:   3,
		MaxDepth:        10,
		EmbankmentSlope: 0.4,
		Drainage:        true,
		Clearance:       0.3,
	}
}

// Carver mutates the shared heightmap so the ground matches road beds,
// with graded embankments and optional drainage channels. It is the
// field's sole writer during the carving phase; roads are processed
// sequentially in list order and samples in path order, so results are
// reproducible for a given input.
//
// Carving only ever lowers terrain: a cell's height never exceeds its
// pre-carve value.
type Carver struct {
	field  *terrain.Heightmap
	params CarveParams
	zones  []terrain.CrossingZone
	carved map[int]struct{}
}

// NewCarver prepares a carver over the given field. zones lists known
// water regions whose crossings must stay untouched.
func NewCarver(field *terrain.Heightmap, params CarveParams, zones []terrain.CrossingZone) *Carver {
	return &Carver{
		field:  field,
		params: params,
		zones:  zones,
		carved: map[int]struct{}{},
	}
}

// CarveAll carves every non-bridge road in order, then re-snaps road
// geometry to the carved ground. It returns the number of distinct
// cells modified. A missing heightmap aborts with ErrNoHeightmap before
// any mutation; a road with fewer than two points is skipped on its own.
func (c *Carver) CarveAll(roads []*Road) (int, error) {
	if c.field.Empty() {
		return 0, ErrNoHeightmap
	}

	for _, r := range roads {
		if len(r.Path) < 2 {
			continue
		}
		if c.isBridge(r) {
			r.Bridge = true
			continue
		}
		c.carveRoad(r)
	}

	c.resnap(roads)

	return len(c.carved), nil
}

// isBridge reports whether the road crosses a registered water zone.
// Five probe points are checked: first, both quartiles, midpoint, last.
func (c *Carver) isBridge(r *Road) bool {
	if r.Bridge {
		return true
	}
	if len(c.zones) == 0 {
		return false
	}

	n := len(r.Path)
	probes := [5]int{0, n / 4, n / 2, (3 * n) / 4, n - 1}

	for _, zone := range c.zones {
		reach := zone.Width/2 + bridgeProbeMargin
		for _, pi := range probes {
			if r.Path[pi].DistanceXZ(zone.Center) < reach {
				return true
			}
		}
	}
	return false
}

// carveRoad flattens terrain along one road: dense resampling, blended
// cuts per sample, then drainage channels if enabled.
func (c *Carver) carveRoad(r *Road) {
	carveWidth := r.Width * c.params.WidthMultiplier
	samples := resamplePath(r.Path, c.params.SampleSpacing)

	for _, s := range samples {
		// Carving only lowers terrain toward the road bed; an elevated
		// road never pulls ground up to meet it.
		target := math.Min(c.field.HeightAt(s.pos.X, s.pos.Z), s.pos.Y)
		c.carveDisc(s.pos, target, carveWidth/2)
	}

	if c.params.Drainage {
		c.carveDrainage(samples, r.Width)
	}
}

// blendFactor is 1 inside the carve radius, fades to 0 across the blend
// band with a cubic Hermite falloff, and is 0 beyond it.
func (c *Carver) blendFactor(d, halfWidth float64) float64 {
	if d <= halfWidth {
		return 1
	}
	if c.params.BlendDistance <= 0 || d > halfWidth+c.params.BlendDistance {
		return 0
	}
	return 1 - geom.SmoothStep((d-halfWidth)/c.params.BlendDistance)
}

// carveDisc lowers cells around one sample point toward its target
// height, tapering the cut across the outer embankment band and
// blending in two sequential passes.
func (c *Carver) carveDisc(center geom.Vec3, target, halfWidth float64) {
	radius := halfWidth + c.params.BlendDistance

	minCx, minCz := c.field.WorldToCell(center.X-radius, center.Z-radius)
	maxCx, maxCz := c.field.WorldToCell(center.X+radius, center.Z+radius)

	for cz := minCz; cz <= maxCz+1; cz++ {
		for cx := minCx; cx <= maxCx+1; cx++ {
			if !c.field.InBounds(cx, cz) {
				continue
			}
			wx, wz := c.field.CellCenter(cx, cz)
			d := math.Hypot(wx-center.X, wz-center.Z)

			bf := c.blendFactor(d, halfWidth)
			if bf <= 0 {
				continue
			}

			cur := c.field.At(cx, cz)
			if cur <= target {
				continue // terrain already at or below the road bed
			}

			cut := math.Min(cur-target, c.params.MaxDepth)

			// Outer 20% of the carve width grades into an embankment
			// instead of a vertical cliff.
			if inner := halfWidth * 0.8; d > inner && d <= halfWidth {
				edgeT := (d - inner) / (halfWidth - inner)
				cut *= geom.Lerp(1, c.params.EmbankmentSlope, edgeT)
			}

			finalTarget := cur - cut
			for _, w := range passWeights {
				next := geom.Lerp(cur, finalTarget, bf*w)
				if next < cur {
					cur = next
				}
			}

			c.field.Set(cx, cz, cur)
			c.carved[c.field.Index(cx, cz)] = struct{}{}
		}
	}
}

// carveDrainage cuts two parallel channels offset to each side of the
// path. Channels only ever subtract. Each cell is dug once per road at
// the deepest blend factor any sample disc gives it, so overlapping
// discs don't trench it repeatedly.
func (c *Carver) carveDrainage(samples []pathSample, roadWidth float64) {
	const channelDepth = 0.8
	offset := 0.7 * roadWidth
	chHalf := 0.3 * roadWidth / 2

	dig := map[int]float64{}

	for _, s := range samples {
		perp := s.dir.Perp()
		for _, side := range [2]float64{-1, 1} {
			centerX := s.pos.X + perp.X*offset*side
			centerZ := s.pos.Z + perp.Y*offset*side
			radius := chHalf + c.params.BlendDistance

			minCx, minCz := c.field.WorldToCell(centerX-radius, centerZ-radius)
			maxCx, maxCz := c.field.WorldToCell(centerX+radius, centerZ+radius)

			for cz := minCz; cz <= maxCz+1; cz++ {
				for cx := minCx; cx <= maxCx+1; cx++ {
					if !c.field.InBounds(cx, cz) {
						continue
					}
					wx, wz := c.field.CellCenter(cx, cz)
					d := math.Hypot(wx-centerX, wz-centerZ)

					bf := c.blendFactor(d, chHalf)
					if bf <= 0 {
						continue
					}

					idx := c.field.Index(cx, cz)
					if bf > dig[idx] {
						dig[idx] = bf
					}
				}
			}
		}
	}

	for idx, bf := range dig {
		c.field.Heights[idx] -= channelDepth * bf
		c.carved[idx] = struct{}{}
	}
}

// resnap re-derives each non-bridge road's path height from the carved
// ground plus clearance, preserving point count and ordering, so stored
// geometry matches the terrain downstream mesh builders will see.
func (c *Carver) resnap(roads []*Road) {
	for _, r := range roads {
		if r.Bridge || len(r.Path) < 2 {
			continue
		}
		for i := range r.Path {
			r.Path[i].Y = c.field.HeightAt(r.Path[i].X, r.Path[i].Z) + c.params.Clearance
		}
	}
}

// pathSample is one densely resampled point with its travel direction
// in the ground plane.
type pathSample struct {
	pos geom.Vec3
	dir geom.Vec2
}

// resamplePath walks the polyline emitting a sample every spacing world
// units, plus the final point, in path order.
func resamplePath(path []geom.Vec3, spacing float64) []pathSample {
	if len(path) < 2 {
		return nil
	}
	if spacing <= 0 {
		spacing = 3
	}

	var out []pathSample
	carry := 0.0
	lastDir := geom.Vec2{X: 1}

	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		segLen := a.DistanceXZ(b)
		if segLen == 0 {
			continue
		}
		dir := b.XZ().Sub(a.XZ()).Normalize()
		lastDir = dir

		for carry <= segLen {
			t := carry / segLen
			out = append(out, pathSample{pos: a.LerpTo(b, t), dir: dir})
			carry += spacing
		}
		carry -= segLen
	}

	// Always sample the terminus so short roads carve their full extent.
	last := path[len(path)-1]
	if len(out) == 0 || out[len(out)-1].pos.DistanceXZ(last) > 1e-9 {
		out = append(out, pathSample{pos: last, dir: lastDir})
	}

	return out
}
