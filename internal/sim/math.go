package sim

import "math"

// Vec3 is a right-handed world-space vector (Y up), holding meters for
// positions and radians for Euler rotations.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64    { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// HorizontalDistance ignores the vertical axis; rotor arms extend in the
// XZ plane, so this is the measure the positional resolver sorts by.
func (v Vec3) HorizontalDistance() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
