// Package geom holds the value types of the kernel: vectors, points, normals, 3x3
// matrices, quaternions, bounding boxes and affine transforms.
//
// All types are float32 and stored in 16-byte packed lanes. The padding lane is always
// zero and no operation reads it.
package geom

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// Vector3 is a displacement. It ignores translation when transformed.
type Vector3 struct {
	v simd.Float4
}

// NewVector3 creates a vector from its components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{simd.New3(x, y, z)}
}

func (a Vector3) X() float32 { return a.v[0] }
func (a Vector3) Y() float32 { return a.v[1] }
func (a Vector3) Z() float32 { return a.v[2] }

// At returns component i, 0 <= i <= 2.
func (a Vector3) At(i int) float32 {
	mathutil.Assert(i >= 0 && i < 3, "vector index out of range")
	return a.v[i]
}

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.v.Add(b.v)}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.v.Sub(b.v)}
}

func (a Vector3) Neg() Vector3 {
	return Vector3{a.v.Neg()}
}

func (a Vector3) Mul(s float32) Vector3 {
	return Vector3{a.v.Scale(s)}
}

// Div divides every component by s. s must not be zero.
func (a Vector3) Div(s float32) Vector3 {
	mathutil.Assert(s != 0, "division by zero")
	return Vector3{a.v.Scale(1 / s)}
}

// MulVector multiplies component by component.
func (a Vector3) MulVector(b Vector3) Vector3 {
	return Vector3{a.v.Mul(b.v)}
}

func (a Vector3) Dot(b Vector3) float32 {
	return dot3(a.v, b.v)
}

func (a Vector3) DotNormal(n Normal3) float32 {
	return dot3(a.v, n.v)
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{cross3(a.v, b.v)}
}

func (a Vector3) Length2() float32 {
	return dot3(a.v, a.v)
}

func (a Vector3) Length() float32 {
	return mathutil.Sqrt(a.Length2())
}

// SafeLength is Length, or 0 when the squared length is at or below Epsilon.
func (a Vector3) SafeLength() float32 {
	l2 := a.Length2()
	if l2 <= mathutil.Epsilon {
		return 0
	}
	return mathutil.Sqrt(l2)
}

// Normalize scales a to unit length. The result is not finite for a zero vector.
func (a Vector3) Normalize() Vector3 {
	return Vector3{normalize3(a.v)}
}

// SafeNormalize is Normalize, falling back to the unit x axis when a is degenerate.
func (a Vector3) SafeNormalize() Vector3 {
	if a.Length2() <= mathutil.Epsilon {
		return NewVector3(1, 0, 0)
	}
	return a.Normalize()
}

// Rotate turns a about axis by angle radians. axis must have unit length.
func (a Vector3) Rotate(axis Normal3, angle float32) Vector3 {
	return Vector3{rotate3(a.v, axis.v, angle)}
}

// Angle returns the angle in radians between a and b, in [0, π]. Neither may be zero.
func (a Vector3) Angle(b Vector3) float32 {
	mathutil.Assert(a.Length2() != 0 && b.Length2() != 0, "angle with a zero vector")
	return mathutil.Atan2(a.Cross(b).Length(), a.Dot(b))
}

func (a Vector3) Abs() Vector3 {
	return Vector3{a.v.Abs()}
}

func (a Vector3) Min(b Vector3) Vector3 {
	return Vector3{a.v.Min(b.v)}
}

func (a Vector3) Max(b Vector3) Vector3 {
	return Vector3{a.v.Max(b.v)}
}

// MaxAxis returns the index of the largest component, the lowest index on ties.
func (a Vector3) MaxAxis() int {
	if a.v[0] < a.v[1] {
		if a.v[1] < a.v[2] {
			return 2
		}
		return 1
	}
	if a.v[0] < a.v[2] {
		return 2
	}
	return 0
}

func (a Vector3) IsZero() bool {
	return a.v[0] == 0 && a.v[1] == 0 && a.v[2] == 0
}

// FuzzyZero reports whether the squared length is below Epsilon.
func (a Vector3) FuzzyZero() bool {
	return a.Length2() < mathutil.Epsilon
}

func (a *Vector3) AddAssign(b Vector3) {
	a.v = a.v.Add(b.v)
}

func (a *Vector3) SubAssign(b Vector3) {
	a.v = a.v.Sub(b.v)
}

func (a *Vector3) MulAssign(s float32) {
	a.v = a.v.Scale(s)
}

func (a *Vector3) DivAssign(s float32) {
	*a = a.Div(s)
}

// SetMin lowers every component of a to the matching one of b when b is smaller.
func (a *Vector3) SetMin(b Vector3) {
	a.v = a.v.Min(b.v)
}

// SetMax raises every component of a to the matching one of b when b is larger.
func (a *Vector3) SetMax(b Vector3) {
	a.v = a.v.Max(b.v)
}

func (a *Vector3) SetZero() {
	a.v = simd.Float4{}
}

func (a *Vector3) SetValue(x, y, z float32) {
	a.v = simd.New3(x, y, z)
}
