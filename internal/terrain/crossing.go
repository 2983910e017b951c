package terrain

import "github.com/fernvale/roadweaver/pkg/geom"

// CrossingZone marks a known water region a road may only cross on a
// bridge. Terrain under such crossings is never carved.
type CrossingZone struct {
	Center geom.Vec3 `json:"center"`
	Width  float64   `json:"width"`
}

// DetectCrossings scans a path for contiguous spans whose terrain lies
// below sea level and returns one zone per span, centred on the span
// midpoint and sized to the span length.
func DetectCrossings(h *Heightmap, path []geom.Vec3) []CrossingZone {
	if h.Empty() || len(path) < 2 {
		return nil
	}

	var zones []CrossingZone
	spanStart := -1

	flush := func(end int) {
		if spanStart < 0 {
			return
		}
		a := path[spanStart]
		b := path[end]
		zones = append(zones, CrossingZone{
			Center: a.LerpTo(b, 0.5),
			Width:  a.DistanceXZ(b),
		})
		spanStart = -1
	}

	for i, p := range path {
		submerged := h.HeightAt(p.X, p.Z) < h.SeaLevel
		if submerged && spanStart < 0 {
			spanStart = i
		} else if !submerged && spanStart >= 0 {
			flush(i - 1)
		}
	}
	flush(len(path) - 1)

	return zones
}
