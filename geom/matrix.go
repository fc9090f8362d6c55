package geom

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// Matrix3x3 is a linear map stored as three rows. It acts on column vectors: M·v takes
// the dot product of each row with v.
type Matrix3x3 struct {
	r [3]simd.Float4
}

// NewMatrix3x3 creates a matrix from nine values in row-major order.
func NewMatrix3x3(xx, xy, xz, yx, yy, yz, zx, zy, zz float32) Matrix3x3 {
	return Matrix3x3{[3]simd.Float4{
		simd.New3(xx, xy, xz),
		simd.New3(yx, yy, yz),
		simd.New3(zx, zy, zz),
	}}
}

func Matrix3x3FromRows(r0, r1, r2 Vector3) Matrix3x3 {
	return Matrix3x3{[3]simd.Float4{r0.v, r1.v, r2.v}}
}

func Matrix3x3FromColumns(c0, c1, c2 Vector3) Matrix3x3 {
	return Matrix3x3{mat3Transpose([3]simd.Float4{c0.v, c1.v, c2.v})}
}

func Identity3x3() Matrix3x3 {
	return Diagonal3x3(1, 1, 1)
}

func Diagonal3x3(x, y, z float32) Matrix3x3 {
	return NewMatrix3x3(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
}

// RotationX3x3 rotates by deg degrees about the x axis.
func RotationX3x3(deg float32) Matrix3x3 {
	s, c := mathutil.Sincos(mathutil.Radian(deg))
	return NewMatrix3x3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY3x3 rotates by deg degrees about the y axis.
func RotationY3x3(deg float32) Matrix3x3 {
	s, c := mathutil.Sincos(mathutil.Radian(deg))
	return NewMatrix3x3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ3x3 rotates by deg degrees about the z axis.
func RotationZ3x3(deg float32) Matrix3x3 {
	s, c := mathutil.Sincos(mathutil.Radian(deg))
	return NewMatrix3x3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// AxisAngle3x3 rotates by deg degrees about axis. The axis is normalized here and must
// not be zero.
func AxisAngle3x3(deg float32, axis Vector3) Matrix3x3 {
	mathutil.Assert(!axis.IsZero(), "rotation about a zero axis")
	a := axis.Normalize()
	s, c := mathutil.Sincos(mathutil.Radian(deg))
	x, y, z := a.X(), a.Y(), a.Z()
	k := 1 - c

	return NewMatrix3x3(
		x*x+(1-x*x)*c, x*y*k-z*s, x*z*k+y*s,
		x*y*k+z*s, y*y+(1-y*y)*c, y*z*k-x*s,
		x*z*k-y*s, y*z*k+x*s, z*z+(1-z*z)*c,
	)
}

// Row returns a copy of row i.
func (m Matrix3x3) Row(i int) Vector3 {
	mathutil.Assert(i >= 0 && i < 3, "matrix row out of range")
	return Vector3{m.r[i]}
}

// Column returns a copy of column i.
func (m Matrix3x3) Column(i int) Vector3 {
	mathutil.Assert(i >= 0 && i < 3, "matrix column out of range")
	return NewVector3(m.r[0][i], m.r[1][i], m.r[2][i])
}

func (m Matrix3x3) At(row, col int) float32 {
	mathutil.Assert(row >= 0 && row < 3 && col >= 0 && col < 3, "matrix index out of range")
	return m.r[row][col]
}

// Mul returns m·n, the map that applies n first.
func (m Matrix3x3) Mul(n Matrix3x3) Matrix3x3 {
	return Matrix3x3{mat3Mul(m.r, n.r)}
}

func (m Matrix3x3) MulScalar(s float32) Matrix3x3 {
	return Matrix3x3{[3]simd.Float4{m.r[0].Scale(s), m.r[1].Scale(s), m.r[2].Scale(s)}}
}

func (m Matrix3x3) Add(n Matrix3x3) Matrix3x3 {
	return Matrix3x3{[3]simd.Float4{m.r[0].Add(n.r[0]), m.r[1].Add(n.r[1]), m.r[2].Add(n.r[2])}}
}

func (m Matrix3x3) Sub(n Matrix3x3) Matrix3x3 {
	return Matrix3x3{[3]simd.Float4{m.r[0].Sub(n.r[0]), m.r[1].Sub(n.r[1]), m.r[2].Sub(n.r[2])}}
}

// MulVector returns m·v.
func (m Matrix3x3) MulVector(v Vector3) Vector3 {
	return Vector3{mat3MulVec(m.r, v.v)}
}

// TransposeMulVector returns mᵗ·v.
func (m Matrix3x3) TransposeMulVector(v Vector3) Vector3 {
	return Vector3{mat3TransposeMulVec(m.r, v.v)}
}

func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{mat3Transpose(m.r)}
}

func (m Matrix3x3) Determinant() float32 {
	return dot3(m.r[0], cross3(m.r[1], m.r[2]))
}

// Adjoint returns the adjugate, the transpose of the cofactor matrix.
func (m Matrix3x3) Adjoint() Matrix3x3 {
	return Matrix3x3{mat3Transpose([3]simd.Float4{
		cross3(m.r[1], m.r[2]),
		cross3(m.r[2], m.r[0]),
		cross3(m.r[0], m.r[1]),
	})}
}

// Inverse returns the adjugate divided by the determinant. m must not be singular; a
// zero determinant yields non-finite entries.
func (m Matrix3x3) Inverse() Matrix3x3 {
	c0 := cross3(m.r[1], m.r[2])
	det := dot3(m.r[0], c0)
	mathutil.Assert(det != 0, "inverse of a singular matrix")

	adj := mat3Transpose([3]simd.Float4{
		c0,
		cross3(m.r[2], m.r[0]),
		cross3(m.r[0], m.r[1]),
	})
	return Matrix3x3{adj}.MulScalar(1 / det)
}

func (m Matrix3x3) Trace() float32 {
	return m.r[0][0] + m.r[1][1] + m.r[2][2]
}

// Abs takes the absolute value of every entry.
func (m Matrix3x3) Abs() Matrix3x3 {
	return Matrix3x3{[3]simd.Float4{m.r[0].Abs(), m.r[1].Abs(), m.r[2].Abs()}}
}

func (m Matrix3x3) IsIdentity() bool {
	return m == Identity3x3()
}

// ApproxEqual compares every entry within eps.
func (m Matrix3x3) ApproxEqual(n Matrix3x3, eps float32) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if mathutil.Abs(m.r[i][j]-n.r[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func (m *Matrix3x3) SetRow(i int, v Vector3) {
	mathutil.Assert(i >= 0 && i < 3, "matrix row out of range")
	m.r[i] = v.v
}

// SetValue overwrites every entry, in row-major order.
func (m *Matrix3x3) SetValue(xx, xy, xz, yx, yy, yz, zx, zy, zz float32) {
	*m = NewMatrix3x3(xx, xy, xz, yx, yy, yz, zx, zy, zz)
}

func (m *Matrix3x3) SetIdentity() {
	*m = Identity3x3()
}

// MulAssign sets m to m·n.
func (m *Matrix3x3) MulAssign(n Matrix3x3) {
	m.r = mat3Mul(m.r, n.r)
}
