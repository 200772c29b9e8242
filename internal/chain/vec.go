package chain

import "math"

type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(w Vec2) Vec2      { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2      { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 { return v.Sub(w).Len() }

// Polar returns the offset of length r at angle theta (0 on +X, clockwise on
// screen since Y grows downward).
func Polar(r, theta float64) Vec2 {
	return Vec2{math.Cos(theta), math.Sin(theta)}.Scale(r)
}
