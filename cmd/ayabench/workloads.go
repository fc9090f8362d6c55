package main

import (
	"context"
	"sort"

	"github.com/akmonengine/aya"
	"github.com/akmonengine/aya/geom"
)

// workload runs cfg.Iterations passes over the dataset and returns a checksum of its output.
type workload func(ctx context.Context, ds *dataset, cfg Config) (uint64, error)

var workloads = map[string]workload{
	"matrix-mul":       matrixMul,
	"transform-points": transformPoints,
	"transform-bboxes": transformBoxes,
	"quaternion-slerp": quaternionSlerp,
	"compose":          compose,
	"grid-pairs":       gridPairs,
}

func workloadNames() []string {
	names := make([]string, 0, len(workloads))
	for name := range workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// matrixMul chains products in place: a = a·b, then b = b·a.
func matrixMul(ctx context.Context, ds *dataset, cfg Config) (uint64, error) {
	a := append([]geom.Matrix3x3(nil), ds.matricesA...)
	b := append([]geom.Matrix3x3(nil), ds.matricesB...)

	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for i := range a {
			a[i] = a[i].Mul(b[i])
			b[i] = b[i].Mul(a[i])
		}
	}

	sum := newChecksum()
	for i := range a {
		sum.matrix(a[i])
		sum.matrix(b[i])
	}
	return sum.Sum64(), nil
}

func transformPoints(ctx context.Context, ds *dataset, cfg Config) (uint64, error) {
	dst := make([]geom.Point3, len(ds.points))

	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		t := ds.transforms[it%len(ds.transforms)]
		aya.TransformPoints(t, dst, ds.points, cfg.Workers)
	}

	sum := newChecksum()
	for _, p := range dst {
		sum.point(p)
	}
	sum.box(aya.BoundsOf(dst))
	return sum.Sum64(), nil
}

func transformBoxes(ctx context.Context, ds *dataset, cfg Config) (uint64, error) {
	dst := make([]geom.BBox, len(ds.boxes))

	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		t := ds.transforms[it%len(ds.transforms)]
		aya.TransformBoxes(t, dst, ds.boxes, cfg.Workers)
	}

	sum := newChecksum()
	for _, b := range dst {
		sum.box(b)
	}
	return sum.Sum64(), nil
}

// quaternionSlerp walks every quaternion toward its target a little further each pass.
func quaternionSlerp(ctx context.Context, ds *dataset, cfg Config) (uint64, error) {
	q := append([]geom.Quaternion(nil), ds.quatsFrom...)

	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		t := float32(it+1) / float32(cfg.Iterations+1)
		for i := range q {
			q[i] = q[i].Slerp(ds.quatsTo[i], t).Normalize()
		}
	}

	sum := newChecksum()
	for _, v := range q {
		sum.quaternion(v)
	}
	return sum.Sum64(), nil
}

// compose folds every transform of the dataset into one, once per pass.
func compose(ctx context.Context, ds *dataset, cfg Config) (uint64, error) {
	acc := geom.NewTransform()

	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for _, t := range ds.transforms {
			acc.MulAssign(t)
		}
	}

	sum := newChecksum()
	sum.matrix(acc.Matrix())
	sum.matrix(acc.InverseMatrix())
	sum.vector(acc.Translation())
	sum.point(acc.ApplyPoint(geom.NewPoint3(1, 2, 3)))
	return sum.Sum64(), nil
}

// gridPairs moves the boxes and collects every overlapping pair through the grid.
func gridPairs(ctx context.Context, ds *dataset, cfg Config) (uint64, error) {
	grid := aya.NewBoxGrid(4, len(ds.boxes))
	moved := make([]geom.BBox, len(ds.boxes))
	sum := newChecksum()

	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		t := ds.transforms[it%len(ds.transforms)]
		aya.TransformBoxes(t, moved, ds.boxes, cfg.Workers)

		grid.Clear()
		for i, b := range moved {
			grid.Insert(i, b)
		}
		pairs := grid.PairsParallel(cfg.Workers)

		sum.count(len(pairs))
		for _, p := range pairs {
			sum.count(p.A)
			sum.count(p.B)
		}
	}
	return sum.Sum64(), nil
}
