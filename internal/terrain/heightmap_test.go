package terrain

import (
	"math"
	"testing"

	"github.com/fernvale/roadweaver/pkg/geom"
)

// linePath returns points along the x axis at z=0 spaced by step.
func linePath(x0, x1, step float64) []geom.Vec3 {
	var pts []geom.Vec3
	for x := x0; x <= x1; x += step {
		pts = append(pts, geom.Vec3{X: x})
	}
	return pts
}

func TestHeightAtFlat(t *testing.T) {
	h := New(8, 2, 0)
	h.Fill(10)

	positions := [][2]float64{
		{0, 0}, {1.3, -2.7}, {-6.9, 6.9}, {100, 100}, // includes out-of-bounds clamp
	}
	for _, p := range positions {
		if got := h.HeightAt(p[0], p[1]); got != 10 {
			t.Errorf("HeightAt(%v,%v) = %f, want 10", p[0], p[1], got)
		}
	}
}

func TestHeightAtRamp(t *testing.T) {
	// Height equals the lattice x index; interpolation along x should be linear.
	h := New(8, 1, 0)
	for cz := 0; cz < h.Size; cz++ {
		for cx := 0; cx < h.Size; cx++ {
			h.Set(cx, cz, float64(cx))
		}
	}

	x0, z0 := h.CellCenter(2, 3)
	want := 2.5
	got := h.HeightAt(x0+0.5, z0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ramp midpoint: got %f, want %f", got, want)
	}
}

func TestSlopeAt(t *testing.T) {
	flat := New(8, 2, 0)
	flat.Fill(5)
	if s := flat.SlopeAt(0, 0); s != 0 {
		t.Errorf("flat slope: got %f, want 0", s)
	}

	// 45 degree ramp: height rises one unit per unit x.
	ramp := New(16, 1, 0)
	for cz := 0; cz < ramp.Size; cz++ {
		for cx := 0; cx < ramp.Size; cx++ {
			ramp.Set(cx, cz, float64(cx))
		}
	}
	if s := ramp.SlopeAt(0, 0); math.Abs(s-45) > 1 {
		t.Errorf("ramp slope: got %f, want ~45", s)
	}
}

func TestNormalAtFlat(t *testing.T) {
	h := New(8, 2, 0)
	h.Fill(3)
	n := h.NormalAt(1, 1)
	if math.Abs(n.Y-1) > 1e-9 || math.Abs(n.X) > 1e-9 || math.Abs(n.Z) > 1e-9 {
		t.Errorf("flat normal should be +Y, got %+v", n)
	}
}

func TestWorldCellRoundTrip(t *testing.T) {
	h := New(16, 4, 0)
	x, z := h.CellCenter(5, 9)
	cx, cz := h.WorldToCell(x, z)
	if cx != 5 || cz != 9 {
		t.Errorf("round trip: got (%d,%d), want (5,9)", cx, cz)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := New(4, 1, 0)
	h.Fill(1)
	cp := h.Clone()
	h.Set(0, 0, 99)
	if cp.At(0, 0) != 1 {
		t.Error("Clone should not share the height buffer")
	}
}

func TestEmpty(t *testing.T) {
	var nilMap *Heightmap
	if !nilMap.Empty() {
		t.Error("nil heightmap should be empty")
	}
	if !(&Heightmap{}).Empty() {
		t.Error("zero heightmap should be empty")
	}
	if New(8, 1, 0).Empty() {
		t.Error("allocated heightmap should not be empty")
	}
}

func TestDetectCrossings(t *testing.T) {
	h := New(32, 4, 0)
	h.Fill(5)
	// Sink a band of cells below sea level around world x in [-10, 10].
	for cz := 0; cz < h.Size; cz++ {
		for cx := 0; cx < h.Size; cx++ {
			x, _ := h.CellCenter(cx, cz)
			if x > -12 && x < 12 {
				h.Set(cx, cz, -3)
			}
		}
	}

	pts := linePath(-40, 40, 2)
	zones := DetectCrossings(h, pts)
	if len(zones) != 1 {
		t.Fatalf("expected 1 crossing zone, got %d", len(zones))
	}
	if math.Abs(zones[0].Center.X) > 6 {
		t.Errorf("zone center should be near x=0, got %f", zones[0].Center.X)
	}
	if zones[0].Width < 10 {
		t.Errorf("zone width should cover the submerged span, got %f", zones[0].Width)
	}

	dry := New(8, 4, 0)
	dry.Fill(5)
	if z := DetectCrossings(dry, pts); len(z) != 0 {
		t.Errorf("dry terrain should produce no zones, got %d", len(z))
	}
}
