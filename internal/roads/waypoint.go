package roads

import (
	"math/rand"

	"github.com/fernvale/roadweaver/internal/terrain"
	"github.com/fernvale/roadweaver/pkg/geom"
)

// WaypointType tags what kind of site a waypoint marks.
type WaypointType string

const (
	WaypointValley     WaypointType = "valley"
	WaypointPlateau    WaypointType = "plateau"
	WaypointMountain   WaypointType = "mountain"
	WaypointCoast      WaypointType = "coast"
	WaypointSettlement WaypointType = "settlement"
	WaypointSpawn      WaypointType = "spawn"
	WaypointFarm       WaypointType = "farm"
)

// Waypoint is a point of interest the road network should connect.
// Waypoints are immutable once produced.
type Waypoint struct {
	Position     geom.Vec3    `json:"position"`
	Type         WaypointType `json:"type"`
	Priority     int          `json:"priority"`
	Biome        string       `json:"biome"`
	Buildability float64      `json:"buildability"` // in [0,1]
}

// Supplier produces the waypoints to connect. The production supplier
// samples terrain; tests hand-build waypoint lists.
type Supplier interface {
	Waypoints() []Waypoint
}

// TerrainSupplier places waypoints on synthesized terrain by sampling
// jittered grid sites and classifying them from height and slope.
type TerrainSupplier struct {
	field   *terrain.Heightmap
	seed    int64
	count   int
	spacing float64
}

// NewTerrainSupplier returns a supplier for the given field. count is
// the desired number of waypoints, spacing the minimum distance between
// accepted sites.
func NewTerrainSupplier(field *terrain.Heightmap, seed int64, count int, spacing float64) *TerrainSupplier {
	return &TerrainSupplier{field: field, seed: seed, count: count, spacing: spacing}
}

// Waypoints samples candidate sites and keeps buildable, spaced ones.
// Deep water sites are rejected outright.
func (s *TerrainSupplier) Waypoints() []Waypoint {
	if s.field.Empty() || s.count < 1 {
		return nil
	}

	rng := rand.New(rand.NewSource(s.seed))
	extent := s.field.HalfExtent
	sea := s.field.SeaLevel

	var out []Waypoint

	// Oversample; random sites land in water or on cliffs often enough.
	for attempt := 0; attempt < s.count*8 && len(out) < s.count; attempt++ {
		x := (rng.Float64()*2 - 1) * extent
		z := (rng.Float64()*2 - 1) * extent

		h := s.field.HeightAt(x, z)
		if h < sea-1 {
			continue // deep water
		}

		slope := s.field.SlopeAt(x, z)
		if slope > 35 {
			continue // cliff face
		}

		tooClose := false
		for _, w := range out {
			if w.Position.DistanceXZ(geom.Vec3{X: x, Z: z}) < s.spacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		wp := Waypoint{
			Position:     geom.Vec3{X: x, Y: h, Z: z},
			Buildability: geom.Clamp(1-slope/45, 0, 1),
		}
		wp.Type, wp.Priority, wp.Biome = classifySite(h, slope, sea)
		out = append(out, wp)
	}

	return out
}

// classifySite maps a sampled height and slope to a waypoint type.
func classifySite(h, slope, sea float64) (WaypointType, int, string) {
	switch {
	case h < sea+3:
		return WaypointCoast, 2, "shore"
	case slope > 22:
		return WaypointMountain, 1, "highland"
	case h > sea+20:
		if slope < 8 {
			return WaypointPlateau, 2, "highland"
		}
		return WaypointMountain, 1, "highland"
	default:
		if slope < 5 {
			return WaypointFarm, 2, "grassland"
		}
		return WaypointValley, 3, "grassland"
	}
}
