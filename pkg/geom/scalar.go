package geom

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothStep is the cubic Hermite interpolation 3t^2 - 2t^3 for t in [0,1].
// Values outside the range are clamped.
func SmoothStep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}
