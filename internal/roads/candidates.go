package roads

import (
	"sort"

	"github.com/fernvale/roadweaver/internal/terrain"
)

const (
	costSamples    = 5    // evenly spaced probes along a candidate segment
	slopeThreshold = 14.0 // degrees; gentler slopes cost nothing
	slopePenalty   = 70.0 // scaled by slope/45 per offending sample
	waterPenalty   = 35.0 // per submerged sample
)

// EdgeCost returns the terrain-aware cost of connecting two waypoints:
// euclidean distance plus slope and water penalties sampled along the
// straight segment between them.
func EdgeCost(a, b Waypoint, oracle terrain.Oracle, seaLevel float64) (distance, weight float64) {
	distance = a.Position.Distance(b.Position)

	slopeSum := 0.0
	submerged := 0
	for i := 0; i < costSamples; i++ {
		t := float64(i) / float64(costSamples-1)
		p := a.Position.LerpTo(b.Position, t)

		if slope := oracle.SlopeAt(p.X, p.Z); slope > slopeThreshold {
			slopeSum += slopePenalty * (slope / 45)
		}
		if oracle.HeightAt(p.X, p.Z) < seaLevel {
			submerged++
		}
	}

	weight = distance + slopeSum/costSamples + float64(submerged)*waterPenalty
	return distance, weight
}

// BuildCandidates connects every waypoint to its k cheapest neighbors
// by terrain-aware cost. Edges are keyed by canonical pair; an edge is
// inserted whenever either endpoint lists the other in its top k, so
// the neighbor relation is deliberately not symmetric.
// Fewer than two waypoints yields an empty set.
func BuildCandidates(waypoints []Waypoint, oracle terrain.Oracle, seaLevel float64, k int) CandidateSet {
	out := CandidateSet{}
	n := len(waypoints)
	if n < 2 || k < 1 {
		return out
	}

	type scored struct {
		j        int
		distance float64
		weight   float64
	}

	for i := 0; i < n; i++ {
		neighbors := make([]scored, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d, w := EdgeCost(waypoints[i], waypoints[j], oracle, seaLevel)
			neighbors = append(neighbors, scored{j: j, distance: d, weight: w})
		}

		sort.Slice(neighbors, func(a, b int) bool {
			if neighbors[a].weight != neighbors[b].weight {
				return neighbors[a].weight < neighbors[b].weight
			}
			return neighbors[a].j < neighbors[b].j
		})

		limit := k
		if limit > len(neighbors) {
			limit = len(neighbors)
		}
		for _, nb := range neighbors[:limit] {
			key := MakeEdgeKey(i, nb.j)
			if _, exists := out[key]; exists {
				continue
			}
			out[key] = CandidateEdge{Distance: nb.distance, Weight: nb.weight}
		}
	}

	return out
}

// sortedEdges returns the set as a slice in canonical key order, which
// downstream stages rely on for reproducibility.
func (cs CandidateSet) sortedEdges() []Edge {
	edges := make([]Edge, 0, len(cs))
	for key, ce := range cs {
		edges = append(edges, Edge{Key: key, Distance: ce.Distance, Weight: ce.Weight})
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].Key.A != edges[b].Key.A {
			return edges[a].Key.A < edges[b].Key.A
		}
		return edges[a].Key.B < edges[b].Key.B
	})
	return edges
}
