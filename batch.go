// Package aya applies the geom kernel to whole data sets: transforming slices of points,
// vectors, normals and boxes in parallel, and finding overlapping boxes with a hashed
// uniform grid.
package aya

import "github.com/akmonengine/aya/geom"

// TransformPoints writes t(src[i]) into dst[i], split over workers goroutines.
// dst and src must have the same length and may alias.
func TransformPoints(t geom.Transform, dst, src []geom.Point3, workers int) {
	mapSlice(workers, dst, src, t.ApplyPoint)
}

// TransformVectors is TransformPoints for displacements; translation is ignored.
func TransformVectors(t geom.Transform, dst, src []geom.Vector3, workers int) {
	mapSlice(workers, dst, src, t.ApplyVector)
}

// TransformNormals applies the inverse transpose of t to every normal.
func TransformNormals(t geom.Transform, dst, src []geom.Normal3, workers int) {
	mapSlice(workers, dst, src, t.ApplyNormal)
}

// TransformBoxes re-fits every box around its transformed corners.
func TransformBoxes(t geom.Transform, dst, src []geom.BBox, workers int) {
	mapSlice(workers, dst, src, t.ApplyBBox)
}

// BoundsOf returns the smallest box holding every point, or the empty box.
func BoundsOf(points []geom.Point3) geom.BBox {
	b := geom.EmptyBBox()
	for _, p := range points {
		b.UnionPoint(p)
	}
	return b
}

// BoundsOfBoxes returns the union of all boxes, or the empty box.
func BoundsOfBoxes(boxes []geom.BBox) geom.BBox {
	b := geom.EmptyBBox()
	for _, o := range boxes {
		b.Union(o)
	}
	return b
}
