// Package terrain stores the shared height field and answers the
// height, slope and normal queries the road pipeline depends on.
package terrain

import (
	"math"

	"github.com/fernvale/roadweaver/pkg/geom"
)

// Heightmap is a square height field stored as a flat row-major array.
// Lattice point (cx, cz) sits at world position
// (cx*CellSize - HalfExtent, cz*CellSize - HalfExtent).
//
// The heightmap is shared mutable state: during the carving phase the
// carver is its sole writer and all readers observe mutations
// immediately. Phases must not interleave.
type Heightmap struct {
	Heights    []float64 // row-major, len == Size*Size
	Size       int       // lattice points per side
	CellSize   float64   // world units per cell
	HalfExtent float64   // world offset of lattice origin
	SeaLevel   float64   // heights below this are water
}

// New allocates a flat heightmap centred on the world origin.
func New(size int, cellSize, seaLevel float64) *Heightmap {
	return &Heightmap{
		Heights:    make([]float64, size*size),
		Size:       size,
		CellSize:   cellSize,
		HalfExtent: float64(size-1) * cellSize / 2,
		SeaLevel:   seaLevel,
	}
}

// Empty reports whether the heightmap has no usable data.
func (h *Heightmap) Empty() bool {
	return h == nil || len(h.Heights) == 0 || h.Size < 2
}

// Index returns the flat array index for a lattice point.
func (h *Heightmap) Index(cx, cz int) int {
	return cz*h.Size + cx
}

// InBounds reports whether the lattice point exists.
func (h *Heightmap) InBounds(cx, cz int) bool {
	return cx >= 0 && cz >= 0 && cx < h.Size && cz < h.Size
}

// At returns the height at a lattice point.
func (h *Heightmap) At(cx, cz int) float64 {
	return h.Heights[cz*h.Size+cx]
}

// Set writes the height at a lattice point.
func (h *Heightmap) Set(cx, cz int, v float64) {
	h.Heights[cz*h.Size+cx] = v
}

// Fill sets every lattice point to the same height.
func (h *Heightmap) Fill(v float64) {
	for i := range h.Heights {
		h.Heights[i] = v
	}
}

// Clone returns a deep copy, useful for before/after comparisons.
func (h *Heightmap) Clone() *Heightmap {
	cp := *h
	cp.Heights = make([]float64, len(h.Heights))
	copy(cp.Heights, h.Heights)
	return &cp
}

// CellCenter returns the world position of a lattice point.
func (h *Heightmap) CellCenter(cx, cz int) (x, z float64) {
	return float64(cx)*h.CellSize - h.HalfExtent, float64(cz)*h.CellSize - h.HalfExtent
}

// WorldToCell returns the lattice point at or below a world position.
func (h *Heightmap) WorldToCell(x, z float64) (cx, cz int) {
	return int(math.Floor((x + h.HalfExtent) / h.CellSize)),
		int(math.Floor((z + h.HalfExtent) / h.CellSize))
}

// HeightAt returns the bilinearly interpolated height at a world position.
// Positions outside the field clamp to the border cells.
func (h *Heightmap) HeightAt(x, z float64) float64 {
	fx := (x + h.HalfExtent) / h.CellSize
	fz := (z + h.HalfExtent) / h.CellSize

	cx := int(math.Floor(fx))
	cz := int(math.Floor(fz))

	if cx < 0 {
		cx = 0
	}
	if cz < 0 {
		cz = 0
	}
	if cx > h.Size-2 {
		cx = h.Size - 2
	}
	if cz > h.Size-2 {
		cz = h.Size - 2
	}

	tx := geom.Clamp(fx-float64(cx), 0, 1)
	tz := geom.Clamp(fz-float64(cz), 0, 1)

	// South edge then north edge, then lerp between them.
	south := h.At(cx, cz)*(1-tx) + h.At(cx+1, cz)*tx
	north := h.At(cx, cz+1)*(1-tx) + h.At(cx+1, cz+1)*tx
	return south*(1-tz) + north*tz
}

// SlopeAt returns the terrain slope angle in degrees at a world position,
// estimated from central differences one cell step apart.
func (h *Heightmap) SlopeAt(x, z float64) float64 {
	d := h.CellSize
	dhx := (h.HeightAt(x+d, z) - h.HeightAt(x-d, z)) / (2 * d)
	dhz := (h.HeightAt(x, z+d) - h.HeightAt(x, z-d)) / (2 * d)
	grad := math.Sqrt(dhx*dhx + dhz*dhz)
	return math.Atan(grad) * 180 / math.Pi
}

// NormalAt returns the terrain surface normal at a world position.
func (h *Heightmap) NormalAt(x, z float64) geom.Vec3 {
	d := h.CellSize
	dhx := (h.HeightAt(x+d, z) - h.HeightAt(x-d, z)) / (2 * d)
	dhz := (h.HeightAt(x, z+d) - h.HeightAt(x, z-d)) / (2 * d)
	return geom.Vec3{X: -dhx, Y: 1, Z: -dhz}.Normalize()
}
