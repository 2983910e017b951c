// Package roads builds the road network topology over a set of
// waypoints and carves the shared terrain heightmap to match it.
package roads

import "github.com/fernvale/roadweaver/pkg/geom"

// RoadClass is the hierarchy tier of a road.
type RoadClass string

const (
	ClassHighway  RoadClass = "highway"
	ClassArterial RoadClass = "arterial"
	ClassLocal    RoadClass = "local"
	ClassLane     RoadClass = "lane"
)

// Road is an ordered polyline with a width and hierarchy class.
// A valid road has at least two path points. Carving may rewrite the
// path's Y values but never its point count or ordering.
type Road struct {
	Path   []geom.Vec3 `json:"path"`
	Width  float64     `json:"width"`
	Class  RoadClass   `json:"class"`
	From   int         `json:"from"` // waypoint index, -1 if unknown
	To     int         `json:"to"`   // waypoint index, -1 if unknown
	Bridge bool        `json:"bridge,omitempty"`
}

// Length returns the sum of consecutive vertex distances.
func (r *Road) Length() float64 {
	total := 0.0
	for i := 1; i < len(r.Path); i++ {
		total += r.Path[i].Distance(r.Path[i-1])
	}
	return total
}

// EdgeKey is a canonical unordered waypoint pair with A < B.
type EdgeKey struct {
	A, B int
}

// MakeEdgeKey canonicalizes a waypoint pair.
func MakeEdgeKey(i, j int) EdgeKey {
	if j < i {
		i, j = j, i
	}
	return EdgeKey{A: i, B: j}
}

// CandidateEdge is the cost annotation of a potential road connection.
type CandidateEdge struct {
	Distance float64
	Weight   float64
}

// CandidateSet maps canonical waypoint pairs to their costs. It exists
// only during topology construction.
type CandidateSet map[EdgeKey]CandidateEdge

// Edge is a concrete edge selected for the network.
type Edge struct {
	Key      EdgeKey
	Distance float64
	Weight   float64
}

// Stats counts what the pipeline produced.
type Stats struct {
	Waypoints      int               `json:"waypoints"`
	CandidateEdges int               `json:"candidate_edges"`
	MSTEdges       int               `json:"mst_edges"`
	LoopEdges      int               `json:"loop_edges"`
	Roads          int               `json:"roads"`
	Bridges        int               `json:"bridges"`
	ByClass        map[RoadClass]int `json:"by_class"`
	CarvedCells    int               `json:"carved_cells"`
}
