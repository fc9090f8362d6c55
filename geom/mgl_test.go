package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMathglConversions(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	if got := Vector3FromVec3(v).Vec3(); got != v {
		t.Errorf("Vector3 round trip = %v", got)
	}
	if got := Point3FromVec3(v).Vec3(); got != v {
		t.Errorf("Point3 round trip = %v", got)
	}
	if got := Normal3FromVec3(v).Vec3(); got != v {
		t.Errorf("Normal3 round trip = %v", got)
	}

	q := mgl32.Quat{W: 0.5, V: mgl32.Vec3{0.5, -0.5, 0.5}}
	if got := QuaternionFromQuat(q); got != NewQuaternion(0.5, -0.5, 0.5, 0.5) || got.Quat() != q {
		t.Errorf("Quaternion round trip = %v", got)
	}

	m := NewMatrix3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	mm := m.Mat3()
	if mm.At(0, 1) != 2 || mm.At(1, 0) != 4 {
		t.Errorf("Mat3 should keep rows and columns: %v", mm)
	}
	if got := Matrix3x3FromMat3(mm); got != m {
		t.Errorf("Matrix3x3 round trip = %v", got)
	}
}
