package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernvale/roadweaver/internal/roads"
	"github.com/fernvale/roadweaver/internal/terrain"
	"github.com/fernvale/roadweaver/pkg/geom"
)

func testField(height float64) *terrain.Heightmap {
	h := terrain.New(64, 1, 0)
	h.Fill(height)
	return h
}

func TestDrawBoundsMatchField(t *testing.T) {
	field := testField(10)

	im := New(field, nil).Draw(nil, nil)
	b := im.Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Equal(t, 64, b.Dy())
}

func TestDrawRoadChangesPixels(t *testing.T) {
	field := testField(10)
	r := New(field, nil)

	road := &roads.Road{
		Path:  []geom.Vec3{{X: -20, Z: 0}, {X: 20, Z: 0}},
		Width: 10,
		Class: roads.ClassArterial,
	}

	plain := r.Draw(nil, nil)
	withRoad := r.Draw([]*roads.Road{road}, nil)

	cx, cz := field.WorldToCell(0, 0)
	assert.Equal(t, plain.At(1, 1), withRoad.At(1, 1), "far corner stays terrain coloured")
	assert.NotEqual(t, plain.At(cx, cz), withRoad.At(cx, cz), "road centre must be painted over")
}

func TestSavePNGWritesFile(t *testing.T) {
	field := testField(10)
	fpath := filepath.Join(t.TempDir(), "map.png")

	require.NoError(t, New(field, nil).SavePNG(fpath, nil, nil))
	assert.FileExists(t, fpath)
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := &Document{
		Seed:     42,
		Size:     64,
		CellSize: 1,
		Roads: []*roads.Road{
			{
				Path:  []geom.Vec3{{X: -20, Y: 10.3, Z: 0}, {X: 20, Y: 10.3, Z: 0}},
				Width: 16,
				Class: roads.ClassArterial,
				From:  0,
				To:    1,
			},
		},
		Stats: roads.Stats{Roads: 1, MSTEdges: 1},
	}

	fpath := filepath.Join(t.TempDir(), "roads.json")
	require.NoError(t, doc.Save(fpath))

	got, err := LoadDocument(fpath)
	require.NoError(t, err)
	assert.Equal(t, doc.Seed, got.Seed)
	assert.Equal(t, doc.Size, got.Size)
	require.Len(t, got.Roads, 1)
	assert.Equal(t, doc.Roads[0].Path, got.Roads[0].Path)
	assert.Equal(t, doc.Stats, got.Stats)
}
