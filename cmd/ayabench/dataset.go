package main

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/akmonengine/aya/geom"
)

// dataset is the input shared by every workload. Each slice has cfg.Size entries.
type dataset struct {
	matricesA  []geom.Matrix3x3
	matricesB  []geom.Matrix3x3
	points     []geom.Point3
	boxes      []geom.BBox
	quatsFrom  []geom.Quaternion
	quatsTo    []geom.Quaternion
	transforms []geom.Transform
}

// newDataset fills every slice in its own goroutine. Each slice has a seed derived from
// seed, so the content does not depend on scheduling.
func newDataset(ctx context.Context, size int, seed int64) (*dataset, error) {
	ds := &dataset{
		matricesA:  make([]geom.Matrix3x3, size),
		matricesB:  make([]geom.Matrix3x3, size),
		points:     make([]geom.Point3, size),
		boxes:      make([]geom.BBox, size),
		quatsFrom:  make([]geom.Quaternion, size),
		quatsTo:    make([]geom.Quaternion, size),
		transforms: make([]geom.Transform, size),
	}

	g, ctx := errgroup.WithContext(ctx)
	fill := func(k int64, fn func(rng *rand.Rand, i int)) {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + k))
			for i := 0; i < size; i++ {
				if i%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				fn(rng, i)
			}
			return nil
		})
	}

	fill(0, func(rng *rand.Rand, i int) { ds.matricesA[i] = randomRotation(rng) })
	fill(1, func(rng *rand.Rand, i int) { ds.matricesB[i] = randomRotation(rng) })
	fill(2, func(rng *rand.Rand, i int) { ds.points[i] = randomPoint(rng, 100) })
	fill(3, func(rng *rand.Rand, i int) {
		p := randomPoint(rng, 100)
		ds.boxes[i] = geom.NewBBox(p, p.Add(geom.NewVector3(rng.Float32()*4, rng.Float32()*4, rng.Float32()*4)))
	})
	fill(4, func(rng *rand.Rand, i int) { ds.quatsFrom[i] = randomQuaternion(rng) })
	fill(5, func(rng *rand.Rand, i int) { ds.quatsTo[i] = randomQuaternion(rng) })
	fill(6, func(rng *rand.Rand, i int) {
		ds.transforms[i] = geom.Translate(rng.Float32()-0.5, rng.Float32()-0.5, rng.Float32()-0.5).
			Mul(geom.RotateQuaternion(randomQuaternion(rng)))
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

func randomPoint(rng *rand.Rand, spread float32) geom.Point3 {
	return geom.NewPoint3(
		(rng.Float32()-0.5)*spread,
		(rng.Float32()-0.5)*spread,
		(rng.Float32()-0.5)*spread,
	)
}

func randomQuaternion(rng *rand.Rand) geom.Quaternion {
	return geom.QuaternionFromEulerZYX(
		(rng.Float32()-0.5)*6,
		(rng.Float32()-0.5)*3,
		(rng.Float32()-0.5)*6,
	)
}

// randomRotation keeps repeated products bounded.
func randomRotation(rng *rand.Rand) geom.Matrix3x3 {
	return randomQuaternion(rng).Matrix()
}
