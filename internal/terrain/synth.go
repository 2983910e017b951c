package terrain

import (
	"math"
	"math/rand"
)

// NoiseParams holds configurable parameters for fractal noise terrain synthesis.
type NoiseParams struct {
	Octaves     int
	Frequency   float64
	Amplitude   float64
	Persistence float64
	Lacunarity  float64
	BaseHeight  float64
}

// DefaultNoiseParams returns parameters producing rolling hills with
// occasional water basins below sea level.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Octaves:     6,
		Frequency:   0.0035,
		Amplitude:   42,
		Persistence: 0.5,
		Lacunarity:  2.0,
		BaseHeight:  6,
	}
}

// NoiseGenerator produces seeded 2D value noise.
type NoiseGenerator struct {
	perm [512]int
}

// NewNoiseGenerator creates a generator whose output is fully determined
// by the seed.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	g := &NoiseGenerator{}
	rng := rand.New(rand.NewSource(seed))
	p := rng.Perm(256)
	for i := 0; i < 256; i++ {
		g.perm[i] = p[i]
		g.perm[i+256] = p[i]
	}
	return g
}

// lattice returns a pseudo-random value in [-1,1] for an integer lattice point.
func (g *NoiseGenerator) lattice(ix, iz int) float64 {
	v := g.perm[(g.perm[ix&255]+iz)&511]
	return float64(v)/127.5 - 1
}

// Noise2D returns smooth value noise in [-1,1] at a continuous position.
func (g *NoiseGenerator) Noise2D(x, z float64) float64 {
	ix := int(math.Floor(x))
	iz := int(math.Floor(z))
	fx := x - float64(ix)
	fz := z - float64(iz)

	// Cubic fade on the cell fractions.
	u := fx * fx * (3 - 2*fx)
	w := fz * fz * (3 - 2*fz)

	a := g.lattice(ix, iz)
	b := g.lattice(ix+1, iz)
	c := g.lattice(ix, iz+1)
	d := g.lattice(ix+1, iz+1)

	south := a + (b-a)*u
	north := c + (d-c)*u
	return south + (north-south)*w
}

// OctaveNoise2D sums octaves of Noise2D with the given persistence,
// normalised back into [-1,1].
func (g *NoiseGenerator) OctaveNoise2D(x, z float64, octaves int, persistence, lacunarity float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += g.Noise2D(x*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

// Synthesize generates a heightmap from seeded fractal noise. The same
// seed and parameters always produce the same field.
func Synthesize(size int, cellSize, seaLevel float64, seed int64, p NoiseParams) *Heightmap {
	h := New(size, cellSize, seaLevel)
	gen := NewNoiseGenerator(seed)

	for cz := 0; cz < size; cz++ {
		for cx := 0; cx < size; cx++ {
			x, z := h.CellCenter(cx, cz)
			n := gen.OctaveNoise2D(x*p.Frequency, z*p.Frequency, p.Octaves, p.Persistence, p.Lacunarity)
			h.Set(cx, cz, p.BaseHeight+n*p.Amplitude)
		}
	}

	return h
}
