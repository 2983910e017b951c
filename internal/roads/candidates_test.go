package roads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCandidatesTooFewWaypoints(t *testing.T) {
	field := flatField(32, 4, 10, 0)

	assert.Empty(t, BuildCandidates(nil, field, 0, 4))
	assert.Empty(t, BuildCandidates([]Waypoint{wpAt(field, 0, 0)}, field, 0, 4))
}

func TestBuildCandidatesPair(t *testing.T) {
	field := flatField(64, 4, 10, 0)
	wps := []Waypoint{wpAt(field, -40, 0), wpAt(field, 40, 0)}

	cands := BuildCandidates(wps, field, 0, 4)
	require.Len(t, cands, 1)

	ce, ok := cands[EdgeKey{A: 0, B: 1}]
	require.True(t, ok, "edge must be stored under the canonical key")
	assert.InDelta(t, 80, ce.Distance, 1e-9)
	// Flat terrain above sea level: no penalties, weight equals distance.
	assert.InDelta(t, ce.Distance, ce.Weight, 1e-9)
}

func TestBuildCandidatesWaterPenalty(t *testing.T) {
	// Entire field submerged: all five samples are below sea level.
	field := flatField(64, 4, -5, 0)
	wps := []Waypoint{wpAt(field, -40, 0), wpAt(field, 40, 0)}

	cands := BuildCandidates(wps, field, 0, 4)
	require.Len(t, cands, 1)

	ce := cands[EdgeKey{A: 0, B: 1}]
	assert.InDelta(t, ce.Distance+5*35, ce.Weight, 1e-9)
}

func TestBuildCandidatesAsymmetricInsertion(t *testing.T) {
	// Colinear points A(0), B(10), C(100) with k=1:
	// A picks B, B picks A, C picks B. Edge (B,C) appears even though
	// B never listed C.
	field := flatField(128, 4, 10, 0)
	wps := []Waypoint{
		wpAt(field, 0, 0),
		wpAt(field, 10, 0),
		wpAt(field, 100, 0),
	}

	cands := BuildCandidates(wps, field, 0, 1)
	require.Len(t, cands, 2)
	assert.Contains(t, cands, EdgeKey{A: 0, B: 1})
	assert.Contains(t, cands, EdgeKey{A: 1, B: 2})
}

func TestBuildCandidatesKLargerThanGraph(t *testing.T) {
	field := flatField(64, 4, 10, 0)
	wps := []Waypoint{
		wpAt(field, -40, -40),
		wpAt(field, 40, -40),
		wpAt(field, 0, 40),
	}

	// k beyond n-1 just yields the complete graph.
	cands := BuildCandidates(wps, field, 0, 10)
	assert.Len(t, cands, 3)
}

func TestMakeEdgeKeyCanonical(t *testing.T) {
	assert.Equal(t, EdgeKey{A: 2, B: 7}, MakeEdgeKey(7, 2))
	assert.Equal(t, EdgeKey{A: 2, B: 7}, MakeEdgeKey(2, 7))
}
