package geom

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// Normal3 is a surface normal. Transforms apply their inverse transpose to it.
type Normal3 struct {
	v simd.Float4
}

func NewNormal3(x, y, z float32) Normal3 {
	return Normal3{simd.New3(x, y, z)}
}

func (n Normal3) X() float32 { return n.v[0] }
func (n Normal3) Y() float32 { return n.v[1] }
func (n Normal3) Z() float32 { return n.v[2] }

// At returns component i, 0 <= i <= 2.
func (n Normal3) At(i int) float32 {
	mathutil.Assert(i >= 0 && i < 3, "normal index out of range")
	return n.v[i]
}

func (n Normal3) Add(m Normal3) Normal3 {
	return Normal3{n.v.Add(m.v)}
}

func (n Normal3) Sub(m Normal3) Normal3 {
	return Normal3{n.v.Sub(m.v)}
}

func (n Normal3) Neg() Normal3 {
	return Normal3{n.v.Neg()}
}

func (n Normal3) Mul(s float32) Normal3 {
	return Normal3{n.v.Scale(s)}
}

func (n Normal3) Div(s float32) Normal3 {
	mathutil.Assert(s != 0, "division by zero")
	return Normal3{n.v.Scale(1 / s)}
}

func (n Normal3) Dot(m Normal3) float32 {
	return dot3(n.v, m.v)
}

func (n Normal3) DotVector(v Vector3) float32 {
	return dot3(n.v, v.v)
}

func (n Normal3) Length2() float32 {
	return dot3(n.v, n.v)
}

func (n Normal3) Length() float32 {
	return mathutil.Sqrt(n.Length2())
}

func (n Normal3) Normalize() Normal3 {
	return Normal3{normalize3(n.v)}
}

// SafeNormalize is Normalize, falling back to the unit x axis when n is degenerate.
func (n Normal3) SafeNormalize() Normal3 {
	if n.Length2() <= mathutil.Epsilon {
		return NewNormal3(1, 0, 0)
	}
	return n.Normalize()
}

// FaceForward flips n into the hemisphere of v.
func (n Normal3) FaceForward(v Vector3) Normal3 {
	if n.DotVector(v) < 0 {
		return n.Neg()
	}
	return n
}
