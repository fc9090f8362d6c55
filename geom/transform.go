package geom

import (
	"github.com/akmonengine/aya/mathutil"
)

// Transform represents the affine map p -> M·p + t.
// The inverse of M is stored next to it, so every constructor builds all three fields
// together and Inverse costs nothing.
type Transform struct {
	m   Matrix3x3
	inv Matrix3x3
	t   Vector3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		m:   Identity3x3(),
		inv: Identity3x3(),
	}
}

// TransformFromMatrix inverts m, which must not be singular.
func TransformFromMatrix(m Matrix3x3) Transform {
	return Transform{m: m, inv: m.Inverse()}
}

// TransformFromMatrixTranslation inverts m, which must not be singular.
func TransformFromMatrixTranslation(m Matrix3x3, t Vector3) Transform {
	return Transform{m: m, inv: m.Inverse(), t: t}
}

// TransformFromParts trusts inv to be the inverse of m.
func TransformFromParts(m, inv Matrix3x3, t Vector3) Transform {
	return Transform{m: m, inv: inv, t: t}
}

func Translate(x, y, z float32) Transform {
	return Transform{
		m:   Identity3x3(),
		inv: Identity3x3(),
		t:   NewVector3(x, y, z),
	}
}

// Scale scales each axis. No factor may be zero.
func Scale(x, y, z float32) Transform {
	mathutil.Assert(x != 0 && y != 0 && z != 0, "zero scale factor")
	return Transform{
		m:   Diagonal3x3(x, y, z),
		inv: Diagonal3x3(1/x, 1/y, 1/z),
	}
}

// rotation builds a transform from an orthonormal matrix, whose inverse is its transpose.
func rotation(m Matrix3x3) Transform {
	return Transform{m: m, inv: m.Transpose()}
}

// RotateX rotates by deg degrees about the x axis.
func RotateX(deg float32) Transform {
	return rotation(RotationX3x3(deg))
}

// RotateY rotates by deg degrees about the y axis.
func RotateY(deg float32) Transform {
	return rotation(RotationY3x3(deg))
}

// RotateZ rotates by deg degrees about the z axis.
func RotateZ(deg float32) Transform {
	return rotation(RotationZ3x3(deg))
}

// Rotate rotates by deg degrees about axis, which must not be zero.
func Rotate(deg float32, axis Vector3) Transform {
	return rotation(AxisAngle3x3(deg, axis))
}

func RotateQuaternion(q Quaternion) Transform {
	return rotation(q.Matrix())
}

// EulerZYX rotates by roll about x, then pitch about y, then yaw about z. Angles are
// radians.
func EulerZYX(yaw, pitch, roll float32) Transform {
	sh, ch := mathutil.Sincos(yaw)
	sj, cj := mathutil.Sincos(pitch)
	si, ci := mathutil.Sincos(roll)
	cc, cs := ci*ch, ci*sh
	sc, ss := si*ch, si*sh

	return rotation(NewMatrix3x3(
		cj*ch, sj*sc-cs, sj*cc+ss,
		cj*sh, sj*ss+cc, sj*cs-sc,
		-sj, cj*si, cj*ci,
	))
}

// LookAt maps world space into a camera frame at eye looking at target: target lands on
// the +z axis and up stays in the yz plane. up must not be parallel to target - eye.
func LookAt(eye, target Point3, up Vector3) Transform {
	dir := target.SubPoint(eye).Normalize()
	left := up.Normalize().Cross(dir).Normalize()
	newUp := dir.Cross(left)

	m := Matrix3x3FromRows(left, newUp, dir)
	inv := m.Transpose()
	return Transform{
		m:   m,
		inv: inv,
		t:   m.MulVector(Vector3(eye)).Neg(),
	}
}

// The Set* methods overwrite matrix, inverse and translation together with the matching
// constructor's result, and return the new value.

func (t *Transform) SetTranslate(x, y, z float32) Transform {
	*t = Translate(x, y, z)
	return *t
}

func (t *Transform) SetScale(x, y, z float32) Transform {
	*t = Scale(x, y, z)
	return *t
}

func (t *Transform) SetRotateX(deg float32) Transform {
	*t = RotateX(deg)
	return *t
}

func (t *Transform) SetRotateY(deg float32) Transform {
	*t = RotateY(deg)
	return *t
}

func (t *Transform) SetRotateZ(deg float32) Transform {
	*t = RotateZ(deg)
	return *t
}

func (t *Transform) SetRotation(deg float32, axis Vector3) Transform {
	*t = Rotate(deg, axis)
	return *t
}

func (t *Transform) SetRotationQuaternion(q Quaternion) Transform {
	*t = RotateQuaternion(q)
	return *t
}

func (t *Transform) SetEulerZYX(yaw, pitch, roll float32) Transform {
	*t = EulerZYX(yaw, pitch, roll)
	return *t
}

func (t *Transform) SetLookAt(eye, target Point3, up Vector3) Transform {
	*t = LookAt(eye, target, up)
	return *t
}

// Mul returns the transform that applies o first, then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		m:   t.m.Mul(o.m),
		inv: o.inv.Mul(t.inv),
		t:   t.m.MulVector(o.t).Add(t.t),
	}
}

// MulAssign sets t to t.Mul(o).
func (t *Transform) MulAssign(o Transform) {
	*t = t.Mul(o)
}

func (t Transform) Inverse() Transform {
	return Transform{
		m:   t.inv,
		inv: t.m,
		t:   t.inv.MulVector(t.t).Neg(),
	}
}

func (t Transform) Matrix() Matrix3x3 {
	return t.m
}

func (t Transform) InverseMatrix() Matrix3x3 {
	return t.inv
}

func (t Transform) Translation() Vector3 {
	return t.t
}

// ApplyVector ignores the translation.
func (t Transform) ApplyVector(v Vector3) Vector3 {
	return t.m.MulVector(v)
}

func (t Transform) ApplyPoint(p Point3) Point3 {
	return Point3{t.m.MulVector(Vector3(p)).Add(t.t).v}
}

// ApplyNormal multiplies by the inverse transpose so normals stay perpendicular to
// transformed surfaces. The result is not renormalized.
func (t Transform) ApplyNormal(n Normal3) Normal3 {
	return Normal3{t.inv.TransposeMulVector(Vector3(n)).v}
}

// ApplyBBox returns the tightest axis-aligned box around the transformed box. An empty
// box stays empty.
func (t Transform) ApplyBBox(b BBox) BBox {
	if b.IsEmpty() {
		return EmptyBBox()
	}
	half := b.Extent().Mul(0.5)
	center := t.ApplyPoint(b.Centroid())
	radius := t.m.Abs().MulVector(half)

	return BBox{
		Min: center.SubVector(radius),
		Max: center.Add(radius),
	}
}

func (t Transform) IsIdentity() bool {
	return t.m.IsIdentity() && t.t.IsZero()
}

// ApproxEqual compares matrix, inverse and translation within eps.
func (t Transform) ApproxEqual(o Transform, eps float32) bool {
	d := t.t.Sub(o.t).Abs()
	return t.m.ApproxEqual(o.m, eps) && t.inv.ApproxEqual(o.inv, eps) &&
		d.X() <= eps && d.Y() <= eps && d.Z() <= eps
}

// HasScale reports whether any basis vector changes length by more than 1e-3.
func (t Transform) HasScale() bool {
	notOne := func(x float32) bool { return x < 0.999 || x > 1.001 }
	return notOne(t.m.Column(0).Length2()) ||
		notOne(t.m.Column(1).Length2()) ||
		notOne(t.m.Column(2).Length2())
}

// SwapsHandedness reports whether the map mirrors space.
func (t Transform) SwapsHandedness() bool {
	return t.m.Determinant() < 0
}
