package common

import "math"

// Vec2 is a 2D vector in float64 pixel space.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// UnmarshalYAML accepts either a {x, y} mapping or a [x, y] pair.
func (v *Vec2) UnmarshalYAML(unmarshal func(any) error) error {
	var pair [2]float64
	if err := unmarshal(&pair); err == nil {
		v.X, v.Y = pair[0], pair[1]
		return nil
	}
	var m struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}
	if err := unmarshal(&m); err != nil {
		return err
	}
	v.X, v.Y = m.X, m.Y
	return nil
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
