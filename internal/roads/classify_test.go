package roads

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fernvale/roadweaver/pkg/geom"
)

func TestClassifyRoadBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		wantClass RoadClass
		wantWidth float64
	}{
		{"short", 200, ClassLocal, 10},
		{"exactly arterial threshold stays local", 1000, ClassLocal, 10},
		{"just over arterial threshold", 1000.0001, ClassArterial, 16},
		{"mid arterial", 2000, ClassArterial, 16},
		{"exactly highway threshold stays arterial", 5000, ClassArterial, 16},
		{"just over highway threshold", 5000.0001, ClassHighway, 24},
		{"long highway", 12000, ClassHighway, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := straightRoad(tt.length, 0, 0)
			ClassifyRoad(r, 5000, 1000)
			assert.Equal(t, tt.wantClass, r.Class)
			assert.Equal(t, tt.wantWidth, r.Width)
		})
	}
}

func TestRoadLengthSumsSegments(t *testing.T) {
	r := &Road{Path: []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 4, Z: 0},
		{X: 3, Y: 4, Z: 12},
	}}
	assert.InDelta(t, 17, r.Length(), 1e-9)

	assert.Zero(t, (&Road{}).Length())
	assert.Zero(t, (&Road{Path: []geom.Vec3{{X: 1}}}).Length())
}
