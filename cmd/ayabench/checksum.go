package main

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/akmonengine/aya/geom"
)

// checksum hashes the bit pattern of every float it sees, so two runs agree only when
// they computed bit-identical results.
type checksum struct {
	digest *xxhash.Digest
	buf    [4]byte
}

func newChecksum() *checksum {
	return &checksum{digest: xxhash.New()}
}

func (c *checksum) floats(xs ...float32) {
	for _, x := range xs {
		binary.LittleEndian.PutUint32(c.buf[:], math.Float32bits(x))
		_, _ = c.digest.Write(c.buf[:])
	}
}

func (c *checksum) point(p geom.Point3) {
	c.floats(p.X(), p.Y(), p.Z())
}

func (c *checksum) vector(v geom.Vector3) {
	c.floats(v.X(), v.Y(), v.Z())
}

func (c *checksum) box(b geom.BBox) {
	c.point(b.Min)
	c.point(b.Max)
}

func (c *checksum) matrix(m geom.Matrix3x3) {
	for i := 0; i < 3; i++ {
		c.vector(m.Row(i))
	}
}

func (c *checksum) quaternion(q geom.Quaternion) {
	c.floats(q.X(), q.Y(), q.Z(), q.W())
}

func (c *checksum) count(n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = c.digest.Write(buf[:])
}

func (c *checksum) Sum64() uint64 {
	return c.digest.Sum64()
}
