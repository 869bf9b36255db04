// Package vec provides the 3-component real-valued vector primitive used
// throughout geomesh: cell positions, edge midpoints, and the normalisation
// that projects every vertex onto the unit sphere.
//
// Vector3 is a pure value type — all operations return a new Vector3 rather
// than mutating the receiver, except that normalisation comes in both a
// value-returning form (Normalize, used by the subdivision pass) and an
// in-place form (NormalizeInPlace); vec_test.go exercises both.
//
// Complexity: every operation here is O(1) time and space.
package vec

import "math"

// Vector3 is a point or direction in three-dimensional space.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v scaled by the scalar s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v with each component divided by the scalar s.
// Div does not guard against s == 0; callers must not pass it (see Normalize).
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the scalar dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the vector cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit-length copy of v.
//
// Undefined for a zero-magnitude vector — this is a precondition violation
// of the caller, not a runtime error (§7 of the mesh specification); callers
// that cannot guarantee a non-zero vector must check Magnitude() themselves.
func (v Vector3) Normalize() Vector3 {
	return v.Div(v.Magnitude())
}

// NormalizeInPlace mutates v to unit length in place, avoiding the extra
// value copy Normalize performs. Same zero-vector precondition as
// Normalize applies.
func (v *Vector3) NormalizeInPlace() {
	m := v.Magnitude()
	v.X /= m
	v.Y /= m
	v.Z /= m
}

// Midpoint returns the unnormalised midpoint of a and b, i.e. (a+b)/2.
// The subdivision pass normalises the result separately (§3.1, invariant I5
// is stated in terms of normalize(a+b), not the midpoint itself).
func Midpoint(a, b Vector3) Vector3 {
	return a.Add(b).Scale(0.5)
}
