package geom

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// Every routine that has a lane-parallel rendition comes in a packed and a scalar
// flavour. The exported API dispatches on simd.Enabled; both flavours are always compiled
// so the tests can hold them against each other.

func dot3(a, b simd.Float4) float32 {
	if simd.Enabled {
		return dot3Packed(a, b)
	}
	return dot3Scalar(a, b)
}

func dot3Packed(a, b simd.Float4) float32 {
	return a.Dot3(b)
}

func dot3Scalar(a, b simd.Float4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b simd.Float4) simd.Float4 {
	if simd.Enabled {
		return cross3Packed(a, b)
	}
	return cross3Scalar(a, b)
}

func cross3Packed(a, b simd.Float4) simd.Float4 {
	return a.Cross3(b)
}

func cross3Scalar(a, b simd.Float4) simd.Float4 {
	return simd.New3(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

func normalize3(a simd.Float4) simd.Float4 {
	if simd.Enabled {
		return normalize3Packed(a)
	}
	return normalize3Scalar(a)
}

func normalize3Packed(a simd.Float4) simd.Float4 {
	return a.Scale(mathutil.RSqrt(a.Dot3(a)))
}

func normalize3Scalar(a simd.Float4) simd.Float4 {
	l := mathutil.Sqrt(dot3Scalar(a, a))
	return simd.New3(a[0]/l, a[1]/l, a[2]/l)
}

// rotate3 turns a about the unit axis by angle radians (Rodrigues).
func rotate3(a, axis simd.Float4, angle float32) simd.Float4 {
	if simd.Enabled {
		return rotate3Packed(a, axis, angle)
	}
	return rotate3Scalar(a, axis, angle)
}

func rotate3Packed(a, axis simd.Float4, angle float32) simd.Float4 {
	s, c := mathutil.Sincos(angle)

	o := axis.Mul(a).MaskXYZ()
	o = o.Add(o.Shuffle(1, 2, 0, 3)).Add(o.Shuffle(2, 0, 1, 3))
	o = o.Lane(0).Mul(axis)

	x := a.Sub(o)
	y := axis.Cross3(a)

	return o.Add(x.Scale(c)).Add(y.Scale(s)).MaskXYZ()
}

func rotate3Scalar(a, axis simd.Float4, angle float32) simd.Float4 {
	s, c := mathutil.Sincos(angle)
	d := dot3Scalar(axis, a)

	o := simd.New3(axis[0]*d, axis[1]*d, axis[2]*d)
	x := simd.New3(a[0]-o[0], a[1]-o[1], a[2]-o[2])
	y := cross3Scalar(axis, a)

	return simd.New3(
		o[0]+x[0]*c+y[0]*s,
		o[1]+x[1]*c+y[1]*s,
		o[2]+x[2]*c+y[2]*s,
	)
}

// mat3Mul returns the row-major product a·b.
func mat3Mul(a, b [3]simd.Float4) [3]simd.Float4 {
	if simd.Enabled {
		return mat3MulPacked(a, b)
	}
	return mat3MulScalar(a, b)
}

func mat3MulPacked(a, b [3]simd.Float4) [3]simd.Float4 {
	var r [3]simd.Float4
	for i := range r {
		r[i] = b[0].Mul(a[i].Lane(0)).
			Add(b[1].Mul(a[i].Lane(1))).
			Add(b[2].Mul(a[i].Lane(2)))
	}
	return r
}

func mat3MulScalar(a, b [3]simd.Float4) [3]simd.Float4 {
	var r [3]simd.Float4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return r
}

// mat3MulVec returns m·v with v taken as a column.
func mat3MulVec(m [3]simd.Float4, v simd.Float4) simd.Float4 {
	if simd.Enabled {
		return mat3MulVecPacked(m, v)
	}
	return mat3MulVecScalar(m, v)
}

func mat3MulVecPacked(m [3]simd.Float4, v simd.Float4) simd.Float4 {
	c := mat3Transpose(m)
	return c[0].Scale(v[0]).Add(c[1].Scale(v[1])).Add(c[2].Scale(v[2]))
}

func mat3MulVecScalar(m [3]simd.Float4, v simd.Float4) simd.Float4 {
	return simd.New3(dot3Scalar(m[0], v), dot3Scalar(m[1], v), dot3Scalar(m[2], v))
}

// mat3TransposeMulVec returns mᵗ·v without building the transpose.
func mat3TransposeMulVec(m [3]simd.Float4, v simd.Float4) simd.Float4 {
	if simd.Enabled {
		return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
	}
	return simd.New3(
		m[0][0]*v[0]+m[1][0]*v[1]+m[2][0]*v[2],
		m[0][1]*v[0]+m[1][1]*v[1]+m[2][1]*v[2],
		m[0][2]*v[0]+m[1][2]*v[1]+m[2][2]*v[2],
	)
}

// mat3Transpose is pure lane movement, so a single rendition serves both paths.
func mat3Transpose(m [3]simd.Float4) [3]simd.Float4 {
	lo := simd.UnpackLo(m[0], m[1])
	hi := simd.UnpackHi(m[0], m[1])
	r2 := m[2]
	return [3]simd.Float4{
		simd.MoveLH(lo, r2.Shuffle(0, 3, 0, 3)),
		simd.MoveHL(r2.Shuffle(1, 3, 1, 3), lo),
		simd.MoveLH(hi, r2.Shuffle(2, 3, 2, 3)),
	}
}

// quatMul is the Hamilton product a⊗b over (x, y, z, w) lanes.
func quatMul(a, b simd.Float4) simd.Float4 {
	if simd.Enabled {
		return quatMulPacked(a, b)
	}
	return quatMulScalar(a, b)
}

func quatMulPacked(a, b simd.Float4) simd.Float4 {
	a1 := a.Shuffle(0, 1, 2, 0).Mul(b.Shuffle(3, 3, 3, 0))
	a2 := a.Shuffle(1, 2, 0, 1).Mul(b.Shuffle(2, 0, 1, 1))
	b1 := a.Shuffle(2, 0, 1, 2).Mul(b.Shuffle(1, 2, 0, 2))
	a0 := a.Lane(3).Mul(b)

	a1 = a1.Add(a2).NegateW()
	a0 = a0.Sub(b1)
	return a0.Add(a1)
}

func quatMulScalar(a, b simd.Float4) simd.Float4 {
	return simd.New(
		a[3]*b[0]+a[0]*b[3]+a[1]*b[2]-a[2]*b[1],
		a[3]*b[1]+a[1]*b[3]+a[2]*b[0]-a[0]*b[2],
		a[3]*b[2]+a[2]*b[3]+a[0]*b[1]-a[1]*b[0],
		a[3]*b[3]-a[0]*b[0]-a[1]*b[1]-a[2]*b[2],
	)
}

// quatMulVec is q⊗(v, 0).
func quatMulVec(q, v simd.Float4) simd.Float4 {
	if simd.Enabled {
		return quatMulVecPacked(q, v)
	}
	return quatMulVecScalar(q, v)
}

func quatMulVecPacked(q, v simd.Float4) simd.Float4 {
	a1 := q.Shuffle(3, 3, 3, 0).Mul(v.Shuffle(0, 1, 2, 0))
	a2 := q.Shuffle(1, 2, 0, 1).Mul(v.Shuffle(2, 0, 1, 1))
	a3 := q.Shuffle(2, 0, 1, 2).Mul(v.Shuffle(1, 2, 0, 2))

	return a1.Add(a2).NegateW().Sub(a3)
}

func quatMulVecScalar(q, v simd.Float4) simd.Float4 {
	return simd.New(
		q[3]*v[0]+q[1]*v[2]-q[2]*v[1],
		q[3]*v[1]+q[2]*v[0]-q[0]*v[2],
		q[3]*v[2]+q[0]*v[1]-q[1]*v[0],
		-q[0]*v[0]-q[1]*v[1]-q[2]*v[2],
	)
}

// vecMulQuat is (v, 0)⊗q.
func vecMulQuat(v, q simd.Float4) simd.Float4 {
	if simd.Enabled {
		return vecMulQuatPacked(v, q)
	}
	return vecMulQuatScalar(v, q)
}

func vecMulQuatPacked(v, q simd.Float4) simd.Float4 {
	a1 := v.Shuffle(0, 1, 2, 0).Mul(q.Shuffle(3, 3, 3, 0))
	a2 := v.Shuffle(1, 2, 0, 1).Mul(q.Shuffle(2, 0, 1, 1))
	a3 := v.Shuffle(2, 0, 1, 2).Mul(q.Shuffle(1, 2, 0, 2))

	return a1.Add(a2).NegateW().Sub(a3)
}

func vecMulQuatScalar(v, q simd.Float4) simd.Float4 {
	return simd.New(
		v[0]*q[3]+v[1]*q[2]-v[2]*q[1],
		v[1]*q[3]+v[2]*q[0]-v[0]*q[2],
		v[2]*q[3]+v[0]*q[1]-v[1]*q[0],
		-v[0]*q[0]-v[1]*q[1]-v[2]*q[2],
	)
}

// boxOverlaps tests [aMin, aMax] against [bMin, bMax] on every axis.
func boxOverlaps(aMin, aMax, bMin, bMax simd.Float4) bool {
	if simd.Enabled {
		return aMin.LessEqual(bMax) && bMin.LessEqual(aMax)
	}
	return aMin[0] <= bMax[0] && aMax[0] >= bMin[0] &&
		aMin[1] <= bMax[1] && aMax[1] >= bMin[1] &&
		aMin[2] <= bMax[2] && aMax[2] >= bMin[2]
}

// boxContains tests min <= p <= max on every axis.
func boxContains(min, max, p simd.Float4) bool {
	if simd.Enabled {
		return min.LessEqual(p) && p.LessEqual(max)
	}
	return p[0] >= min[0] && p[0] <= max[0] &&
		p[1] >= min[1] && p[1] <= max[1] &&
		p[2] >= min[2] && p[2] <= max[2]
}

func dot4(a, b simd.Float4) float32 {
	if simd.Enabled {
		return a.Dot(b)
	}
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}
