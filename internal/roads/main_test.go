package roads

import (
	"os"
	"testing"

	"github.com/fernvale/roadweaver/internal/logger"
	"github.com/fernvale/roadweaver/internal/terrain"
	"github.com/fernvale/roadweaver/pkg/geom"
)

func TestMain(m *testing.M) {
	// Silent logger: no console, no file.
	_ = logger.InitWithFileConfig("error", logger.FileConfig{}, false)
	os.Exit(m.Run())
}

// flatField returns a heightmap filled with a constant height.
func flatField(size int, cellSize, height, sea float64) *terrain.Heightmap {
	h := terrain.New(size, cellSize, sea)
	h.Fill(height)
	return h
}

// wpAt builds a waypoint sitting on the field surface at (x, z).
func wpAt(field *terrain.Heightmap, x, z float64) Waypoint {
	return Waypoint{
		Position:     geom.Vec3{X: x, Y: field.HeightAt(x, z), Z: z},
		Type:         WaypointValley,
		Priority:     1,
		Biome:        "grassland",
		Buildability: 1,
	}
}

// straightRoad builds a two-point road of the given XZ length at height y.
func straightRoad(length, y, width float64) *Road {
	return &Road{
		Path: []geom.Vec3{
			{X: -length / 2, Y: y, Z: 0},
			{X: length / 2, Y: y, Z: 0},
		},
		Width: width,
		From:  -1,
		To:    -1,
	}
}
