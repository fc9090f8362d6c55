package geom

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/akmonengine/aya/simd"
)

// Conversions to and from mgl32, whose matrices are column-major.

func Vector3FromVec3(v mgl32.Vec3) Vector3 { return NewVector3(v[0], v[1], v[2]) }
func Point3FromVec3(v mgl32.Vec3) Point3   { return NewPoint3(v[0], v[1], v[2]) }
func Normal3FromVec3(v mgl32.Vec3) Normal3 { return NewNormal3(v[0], v[1], v[2]) }

func (a Vector3) Vec3() mgl32.Vec3 { return a.v.Vec3() }
func (p Point3) Vec3() mgl32.Vec3  { return p.v.Vec3() }
func (n Normal3) Vec3() mgl32.Vec3 { return n.v.Vec3() }

func QuaternionFromQuat(q mgl32.Quat) Quaternion {
	return NewQuaternion(q.V[0], q.V[1], q.V[2], q.W)
}

func (q Quaternion) Quat() mgl32.Quat {
	return mgl32.Quat{W: q.v[3], V: q.v.Vec3()}
}

func Matrix3x3FromMat3(m mgl32.Mat3) Matrix3x3 {
	c0, c1, c2 := m.Cols()
	return Matrix3x3{mat3Transpose([3]simd.Float4{
		simd.New3(c0[0], c0[1], c0[2]),
		simd.New3(c1[0], c1[1], c1[2]),
		simd.New3(c2[0], c2[1], c2[2]),
	})}
}

func (m Matrix3x3) Mat3() mgl32.Mat3 {
	return mgl32.Mat3FromRows(m.r[0].Vec3(), m.r[1].Vec3(), m.r[2].Vec3())
}

// Mat4 returns the homogeneous 4x4 form of t.
func (t Transform) Mat4() mgl32.Mat4 {
	r := t.m.Mat3().Mat4()
	r.SetCol(3, t.t.v.Vec3().Vec4(1))
	return r
}
