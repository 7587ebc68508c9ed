package vmath

import "math"

// Vec2 is a world-space point or displacement in field units
// Origin is the planet; +Y is up
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a+b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale multiplies both axes by f
func (a Vec2) Scale(f float64) Vec2 {
	return Vec2{a.X * f, a.Y * f}
}

// Len returns the Euclidean magnitude
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// LenSq returns squared magnitude without sqrt
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Dist returns the distance between a and b
func (a Vec2) Dist(b Vec2) float64 {
	return b.Sub(a).Len()
}

// IsZero reports whether both axes are exactly zero
func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// WithinBox reports whether b lies within tol of a on both axes independently
func (a Vec2) WithinBox(b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Toward returns the velocity from a to b at the given speed
// Zero when a and b coincide
func Toward(from, to Vec2, speed float64) Vec2 {
	return to.Sub(from).Normalize().Scale(speed)
}
