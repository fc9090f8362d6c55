package geom

import (
	"math"

	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// Quaternion holds (x, y, z, w). Unit quaternions are rotations; other values are fine as
// intermediate results. The zero value is the zero quaternion, not the identity.
type Quaternion struct {
	v simd.Float4
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{simd.New(x, y, z, w)}
}

func QuaternionIdentity() Quaternion {
	return NewQuaternion(0, 0, 0, 1)
}

// QuaternionFromAxisAngle rotates by angle radians about axis. axis must not be zero and
// is normalized here.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	mathutil.Assert(!axis.IsZero(), "rotation about a zero axis")
	s, c := mathutil.Sincos(angle * 0.5)
	a := axis.Normalize().Mul(s)
	return NewQuaternion(a.X(), a.Y(), a.Z(), c)
}

// QuaternionFromEulerZYX rotates by roll about x, then pitch about y, then yaw about z.
// Angles are radians.
func QuaternionFromEulerZYX(yaw, pitch, roll float32) Quaternion {
	sy, cy := mathutil.Sincos(yaw * 0.5)
	sp, cp := mathutil.Sincos(pitch * 0.5)
	sr, cr := mathutil.Sincos(roll * 0.5)

	return NewQuaternion(
		sr*cp*cy-cr*sp*sy,
		cr*sp*cy+sr*cp*sy,
		cr*cp*sy-sr*sp*cy,
		cr*cp*cy+sr*sp*sy,
	)
}

// QuaternionFromEulerYXZ rotates by roll about z, then pitch about x, then yaw about y.
// Angles are radians.
func QuaternionFromEulerYXZ(yaw, pitch, roll float32) Quaternion {
	sy, cy := mathutil.Sincos(yaw * 0.5)
	sp, cp := mathutil.Sincos(pitch * 0.5)
	sr, cr := mathutil.Sincos(roll * 0.5)

	return NewQuaternion(
		cr*sp*cy+sr*cp*sy,
		cr*cp*sy-sr*sp*cy,
		sr*cp*cy-cr*sp*sy,
		cr*cp*cy+sr*sp*sy,
	)
}

func (q Quaternion) X() float32 { return q.v[0] }
func (q Quaternion) Y() float32 { return q.v[1] }
func (q Quaternion) Z() float32 { return q.v[2] }
func (q Quaternion) W() float32 { return q.v[3] }

// Vector returns the (x, y, z) part.
func (q Quaternion) Vector() Vector3 {
	return Vector3{q.v.MaskXYZ()}
}

func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{q.v.Add(p.v)}
}

func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{q.v.Sub(p.v)}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{q.v.Neg()}
}

func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{q.v.Scale(s)}
}

func (q Quaternion) Div(s float32) Quaternion {
	mathutil.Assert(s != 0, "division by zero")
	return Quaternion{q.v.Scale(1 / s)}
}

// Mul is the Hamilton product q⊗p: the rotation p followed by q.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{quatMul(q.v, p.v)}
}

// MulVector returns q⊗(v, 0).
func (q Quaternion) MulVector(v Vector3) Quaternion {
	return Quaternion{quatMulVec(q.v, v.v)}
}

// VectorMulQuaternion returns (v, 0)⊗q.
func VectorMulQuaternion(v Vector3, q Quaternion) Quaternion {
	return Quaternion{vecMulQuat(v.v, q.v)}
}

func (q Quaternion) Dot(p Quaternion) float32 {
	return dot4(q.v, p.v)
}

func (q Quaternion) Length2() float32 {
	return dot4(q.v, q.v)
}

func (q Quaternion) Length() float32 {
	return mathutil.Sqrt(q.Length2())
}

// SafeLength is Length, or 0 when the squared length is at or below Epsilon.
func (q Quaternion) SafeLength() float32 {
	l2 := q.Length2()
	if l2 <= mathutil.Epsilon {
		return 0
	}
	return mathutil.Sqrt(l2)
}

func (q Quaternion) Normalize() Quaternion {
	return Quaternion{q.v.Scale(mathutil.RSqrt(q.Length2()))}
}

// SafeNormalize is Normalize, falling back to the identity when q is degenerate.
func (q Quaternion) SafeNormalize() Quaternion {
	if q.Length2() <= mathutil.Epsilon {
		return QuaternionIdentity()
	}
	return q.Normalize()
}

// Angle returns the rotation angle in radians, in [0, 2π].
func (q Quaternion) Angle() float32 {
	return 2 * mathutil.Acos(mathutil.Clamp(q.v[3], -1, 1))
}

// Axis returns the rotation axis. Near the identity the axis is undefined and (1, 0, 0)
// is returned.
func (q Quaternion) Axis() Vector3 {
	s2 := 1 - q.v[3]*q.v[3]
	if s2 < 10*mathutil.Epsilon {
		return NewVector3(1, 0, 0)
	}
	return q.Vector().Mul(mathutil.RSqrt(s2))
}

// Conjugate negates the vector part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.v.Neg().NegateW()}
}

// Inverse returns the multiplicative inverse. For unit quaternions it is the conjugate.
func (q Quaternion) Inverse() Quaternion {
	l2 := q.Length2()
	mathutil.Assert(l2 != 0, "inverse of a zero quaternion")
	return q.Conjugate().Scale(1 / l2)
}

// Slerp interpolates from q to p by t along the shorter arc. When the two are nearly
// colinear q is returned unchanged.
func (q Quaternion) Slerp(p Quaternion, t float32) Quaternion {
	// precise float64 norm: the colinear test below is tighter than FastRSqrt's error
	magnitude := math.Sqrt(float64(q.Length2()) * float64(p.Length2()))
	mathutil.Assert(magnitude > 0, "slerp of a zero quaternion")

	product := float32(float64(q.Dot(p)) / magnitude)
	absProduct := mathutil.Abs(product)
	if absProduct >= 1-mathutil.Epsilon {
		return q
	}

	theta := mathutil.Acos(absProduct)
	d := mathutil.Sin(theta)

	sign := float32(1)
	if product < 0 {
		sign = -1
	}

	s0 := mathutil.Sin((1-t)*theta) / d
	s1 := mathutil.Sin(sign*t*theta) / d
	return Quaternion{q.v.Scale(s0).Add(p.v.Scale(s1))}
}

// EulerZYX recovers (yaw, pitch, roll) in radians so that
// QuaternionFromEulerZYX(yaw, pitch, roll) describes the same rotation as q. At
// pitch = ±π/2 roll is set to zero and yaw carries the remaining rotation.
func (q Quaternion) EulerZYX() (yaw, pitch, roll float32) {
	x, y, z, w := q.v[0], q.v[1], q.v[2], q.v[3]

	sarg := 2 * (w*y - x*z)
	switch {
	case sarg >= 0.99999:
		pitch = mathutil.HalfPi
		yaw = 2 * mathutil.Atan2(-x, y)
	case sarg <= -0.99999:
		pitch = -mathutil.HalfPi
		yaw = 2 * mathutil.Atan2(x, -y)
	default:
		pitch = mathutil.Asin(sarg)
		roll = mathutil.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
		yaw = mathutil.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	}

	for yaw > mathutil.Pi {
		yaw -= 2 * mathutil.Pi
	}
	for yaw <= -mathutil.Pi {
		yaw += 2 * mathutil.Pi
	}
	return yaw, pitch, roll
}

// Rotate applies the rotation q⊗v⊗q⁻¹ to v. q must have unit length.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	r := quatMul(quatMulVec(q.v, v.v), q.Conjugate().v)
	return Vector3{r.MaskXYZ()}
}

// Matrix returns the rotation matrix of q. Scaling by 2/|q|² keeps the result a rotation
// for non-unit input.
func (q Quaternion) Matrix() Matrix3x3 {
	l2 := q.Length2()
	mathutil.Assert(l2 != 0, "rotation matrix of a zero quaternion")
	s := 2 / l2

	x, y, z, w := q.v[0], q.v[1], q.v[2], q.v[3]
	xs, ys, zs := x*s, y*s, z*s
	wx, wy, wz := w*xs, w*ys, w*zs
	xx, xy, xz := x*xs, x*ys, x*zs
	yy, yz, zz := y*ys, y*zs, z*zs

	return NewMatrix3x3(
		1-(yy+zz), xy-wz, xz+wy,
		xy+wz, 1-(xx+zz), yz-wx,
		xz-wy, yz+wx, 1-(xx+yy),
	)
}

// FuzzyZero reports whether the squared length is below Epsilon.
func (q Quaternion) FuzzyZero() bool {
	return q.Length2() < mathutil.Epsilon
}

// ApproxEqual compares every component within eps.
func (q Quaternion) ApproxEqual(p Quaternion, eps float32) bool {
	d := q.v.Sub(p.v).Abs()
	return d.LessEqual(simd.Splat(eps))
}
