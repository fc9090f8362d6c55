package geom

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/akmonengine/aya/simd"
)

// BBox represents an axis-aligned bounding box
type BBox struct {
	Min Point3
	Max Point3
}

// EmptyBBox returns the canonical empty box: Min at +Inf and Max at -Inf, so a union with
// anything yields that thing.
func EmptyBBox() BBox {
	inf := mathutil.Inf(1)
	return BBox{
		Min: NewPoint3(inf, inf, inf),
		Max: NewPoint3(-inf, -inf, -inf),
	}
}

// NewBBox creates the smallest box holding both points, in any order
func NewBBox(p1, p2 Point3) BBox {
	return BBox{Min: p1.Min(p2), Max: p1.Max(p2)}
}

// BBoxFromPoint creates a box reduced to a single point
func BBoxFromPoint(p Point3) BBox {
	return BBox{Min: p, Max: p}
}

// IsEmpty reports whether Min exceeds Max on any axis
func (b BBox) IsEmpty() bool {
	return b.Min.v[0] > b.Max.v[0] || b.Min.v[1] > b.Max.v[1] || b.Min.v[2] > b.Max.v[2]
}

// Overlaps checks if two boxes overlap, bounds included
func (b BBox) Overlaps(o BBox) bool {
	// boxes overlap if they overlap on all three axes
	return boxOverlaps(b.Min.v, b.Max.v, o.Min.v, o.Max.v)
}

// Inside checks if a point is inside the box, bounds included
func (b BBox) Inside(p Point3) bool {
	return boxContains(b.Min.v, b.Max.v, p.v)
}

// Union grows b to also hold o and returns b for chaining
func (b *BBox) Union(o BBox) *BBox {
	b.Min.v = b.Min.v.Min(o.Min.v)
	b.Max.v = b.Max.v.Max(o.Max.v)
	return b
}

// UnionPoint grows b to also hold p and returns b for chaining
func (b *BBox) UnionPoint(p Point3) *BBox {
	b.Min.v = b.Min.v.Min(p.v)
	b.Max.v = b.Max.v.Max(p.v)
	return b
}

// Expand pushes every face of b outward by d and returns b for chaining
func (b *BBox) Expand(d float32) *BBox {
	m := simd.Splat3(d)
	b.Min.v = b.Min.v.Sub(m)
	b.Max.v = b.Max.v.Add(m)
	return b
}

// Extent returns Max - Min
func (b BBox) Extent() Vector3 {
	return b.Max.SubPoint(b.Min)
}

// SurfaceArea is undefined for an empty box.
func (b BBox) SurfaceArea() float32 {
	d := b.Extent()
	return 2 * (d.X()*d.Y() + d.Y()*d.Z() + d.Z()*d.X())
}

// Volume is undefined for an empty box.
func (b BBox) Volume() float32 {
	d := b.Extent()
	return d.X() * d.Y() * d.Z()
}

// MaximumExtent returns the axis along which the box is longest
func (b BBox) MaximumExtent() int {
	return b.Extent().MaxAxis()
}

func (b BBox) Centroid() Point3 {
	return Point3{b.Min.v.Add(b.Max.v).Scale(0.5)}
}

// Lerp interpolates between the corners independently on each axis
func (b BBox) Lerp(tx, ty, tz float32) Point3 {
	return NewPoint3(
		mathutil.Lerp(tx, b.Min.v[0], b.Max.v[0]),
		mathutil.Lerp(ty, b.Min.v[1], b.Max.v[1]),
		mathutil.Lerp(tz, b.Min.v[2], b.Max.v[2]),
	)
}

// Offset returns the position of p relative to the corners: Min maps to (0, 0, 0) and
// Max to (1, 1, 1). Flat axes leave the component of p - Min unscaled.
func (b BBox) Offset(p Point3) Vector3 {
	o := p.SubPoint(b.Min)
	for i := 0; i < 3; i++ {
		if b.Max.v[i] > b.Min.v[i] {
			o.v[i] /= b.Max.v[i] - b.Min.v[i]
		}
	}
	return o
}

// BoundingSphere returns the centroid and the distance from it to Max. The radius is 0
// when the centroid is not inside the box, which only happens for empty boxes.
func (b BBox) BoundingSphere() (center Point3, radius float32) {
	center = b.Centroid()
	if b.Inside(center) {
		radius = center.Distance(b.Max)
	}
	return center, radius
}
