package geom

import (
	"math/rand"

	"github.com/akmonengine/aya/mathutil"
)

const tolerance = 1e-4

func almostEqual(a, b, epsilon float32) bool {
	return mathutil.Abs(a-b) <= epsilon
}

// Helper function to compare vectors with epsilon tolerance
func vec3AlmostEqual(a, b Vector3, epsilon float32) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

func point3AlmostEqual(a, b Point3, epsilon float32) bool {
	return vec3AlmostEqual(Vector3(a), Vector3(b), epsilon)
}

func randScalar(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func randVector(rng *rand.Rand) Vector3 {
	return NewVector3(randScalar(rng, -10, 10), randScalar(rng, -10, 10), randScalar(rng, -10, 10))
}

func randPoint(rng *rand.Rand) Point3 {
	return Point3(randVector(rng))
}

func randUnitQuaternion(rng *rand.Rand) Quaternion {
	for {
		q := NewQuaternion(
			randScalar(rng, -1, 1), randScalar(rng, -1, 1),
			randScalar(rng, -1, 1), randScalar(rng, -1, 1),
		)
		if q.Length2() > 0.01 {
			return q.Normalize()
		}
	}
}

// randInvertible returns a matrix with every row pushed away from the others so the
// determinant stays comfortably away from zero.
func randInvertible(rng *rand.Rand) Matrix3x3 {
	for {
		m := NewMatrix3x3(
			randScalar(rng, -2, 2), randScalar(rng, -2, 2), randScalar(rng, -2, 2),
			randScalar(rng, -2, 2), randScalar(rng, -2, 2), randScalar(rng, -2, 2),
			randScalar(rng, -2, 2), randScalar(rng, -2, 2), randScalar(rng, -2, 2),
		)
		if mathutil.Abs(m.Determinant()) > 0.5 {
			return m
		}
	}
}

// randTransform composes a rotation, a non-uniform scale and a translation.
func randTransform(rng *rand.Rand) Transform {
	s := Scale(randScalar(rng, 0.5, 2), randScalar(rng, 0.5, 2), randScalar(rng, 0.5, 2))
	r := RotateQuaternion(randUnitQuaternion(rng))
	tr := Translate(randScalar(rng, -5, 5), randScalar(rng, -5, 5), randScalar(rng, -5, 5))
	return tr.Mul(r).Mul(s)
}
