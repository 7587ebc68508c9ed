package vmath

// CirclesOverlap reports whether two circles intersect or touch
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() <= r*r
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
