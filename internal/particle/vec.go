package particle

import "math"

// Vec2 is a world-space vector. The origin is the viewport centre, y points up.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(u Vec2) Vec2    { return Vec2{v.X + u.X, v.Y + u.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Length() float64    { return math.Hypot(v.X, v.Y) }

// FromPolar builds a vector from an angle in radians and a magnitude.
func FromPolar(angle, magnitude float64) Vec2 {
	return Vec2{math.Cos(angle) * magnitude, math.Sin(angle) * magnitude}
}
