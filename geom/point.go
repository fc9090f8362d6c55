package geom

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// Point3 is a position. It picks up translation when transformed.
type Point3 struct {
	v simd.Float4
}

func NewPoint3(x, y, z float32) Point3 {
	return Point3{simd.New3(x, y, z)}
}

func (p Point3) X() float32 { return p.v[0] }
func (p Point3) Y() float32 { return p.v[1] }
func (p Point3) Z() float32 { return p.v[2] }

// At returns component i, 0 <= i <= 2.
func (p Point3) At(i int) float32 {
	mathutil.Assert(i >= 0 && i < 3, "point index out of range")
	return p.v[i]
}

// Add moves p by d.
func (p Point3) Add(d Vector3) Point3 {
	return Point3{p.v.Add(d.v)}
}

// SubPoint returns the displacement from q to p.
func (p Point3) SubPoint(q Point3) Vector3 {
	return Vector3{p.v.Sub(q.v)}
}

// SubVector moves p by -d.
func (p Point3) SubVector(d Vector3) Point3 {
	return Point3{p.v.Sub(d.v)}
}

func (p Point3) Distance2(q Point3) float32 {
	return p.SubPoint(q).Length2()
}

func (p Point3) Distance(q Point3) float32 {
	return p.SubPoint(q).Length()
}

func (p Point3) Min(q Point3) Point3 {
	return Point3{p.v.Min(q.v)}
}

func (p Point3) Max(q Point3) Point3 {
	return Point3{p.v.Max(q.v)}
}

// Lerp returns (1-t)*p + t*q.
func (p Point3) Lerp(q Point3, t float32) Point3 {
	return Point3{p.v.Scale(1 - t).Add(q.v.Scale(t))}
}
