// Package simd provides Float4, four packed float32 lanes laid out like an SSE register.
//
// Geometric types keep x, y, z in lanes 0 to 2 and a zero padding lane 3. Every packed
// operation leaves a zero padding lane zero, so a value built by New3 can be compared
// bit for bit with Equal.
package simd

import (
	"github.com/akmonengine/aya/mathutil"
	"github.com/go-gl/mathgl/mgl32"
)

// Float4 is a 16-byte packed value.
type Float4 mgl32.Vec4

func New(x, y, z, w float32) Float4 {
	return Float4{x, y, z, w}
}

// New3 builds (x, y, z, 0).
func New3(x, y, z float32) Float4 {
	return Float4{x, y, z, 0}
}

// Splat broadcasts s to the four lanes.
func Splat(s float32) Float4 {
	return Float4{s, s, s, s}
}

// Splat3 broadcasts s to lanes 0 to 2 and zeroes lane 3.
func Splat3(s float32) Float4 {
	return Float4{s, s, s, 0}
}

func (a Float4) Add(b Float4) Float4 {
	return Float4(mgl32.Vec4(a).Add(mgl32.Vec4(b)))
}

func (a Float4) Sub(b Float4) Float4 {
	return Float4(mgl32.Vec4(a).Sub(mgl32.Vec4(b)))
}

// Scale multiplies every lane by s.
func (a Float4) Scale(s float32) Float4 {
	return Float4(mgl32.Vec4(a).Mul(s))
}

// Mul is the lane-wise product.
func (a Float4) Mul(b Float4) Float4 {
	return Float4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a Float4) Neg() Float4 {
	return Float4{-a[0], -a[1], -a[2], -a[3]}
}

func (a Float4) Abs() Float4 {
	return Float4{mathutil.Abs(a[0]), mathutil.Abs(a[1]), mathutil.Abs(a[2]), mathutil.Abs(a[3])}
}

// Min is the lane-wise minimum.
func (a Float4) Min(b Float4) Float4 {
	return Float4{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

// Max is the lane-wise maximum.
func (a Float4) Max(b Float4) Float4 {
	return Float4{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2]), max(a[3], b[3])}
}

// Shuffle picks lanes by index: the result is (a[x], a[y], a[z], a[w]).
func (a Float4) Shuffle(x, y, z, w int) Float4 {
	return Float4{a[x], a[y], a[z], a[w]}
}

// UnpackLo interleaves the low halves: (a[0], b[0], a[1], b[1]).
func UnpackLo(a, b Float4) Float4 {
	return Float4{a[0], b[0], a[1], b[1]}
}

// UnpackHi interleaves the high halves: (a[2], b[2], a[3], b[3]).
func UnpackHi(a, b Float4) Float4 {
	return Float4{a[2], b[2], a[3], b[3]}
}

// MoveLH joins the low half of a with the low half of b: (a[0], a[1], b[0], b[1]).
func MoveLH(a, b Float4) Float4 {
	return Float4{a[0], a[1], b[0], b[1]}
}

// MoveHL joins the high half of b with the high half of a: (b[2], b[3], a[2], a[3]).
func MoveHL(a, b Float4) Float4 {
	return Float4{b[2], b[3], a[2], a[3]}
}

// Lane broadcasts lane i to every lane.
func (a Float4) Lane(i int) Float4 {
	return Splat(a[i])
}

// MaskXYZ zeroes lane 3.
func (a Float4) MaskXYZ() Float4 {
	a[3] = 0
	return a
}

// NegateW flips the sign of lane 3 only.
func (a Float4) NegateW() Float4 {
	a[3] = -a[3]
	return a
}

// Dot sums the lane-wise product over all four lanes.
func (a Float4) Dot(b Float4) float32 {
	return mgl32.Vec4(a).Dot(mgl32.Vec4(b))
}

// Dot3 sums the lane-wise product over lanes 0 to 2, folding the high lanes onto lane 0
// the way a movehl/shuffle/add_ss sequence does.
func (a Float4) Dot3(b Float4) float32 {
	m := a.Mul(b)
	z := m.Shuffle(2, 3, 2, 3)
	y := m.Shuffle(1, 1, 1, 1)
	return m[0] + y[0] + z[0]
}

// Cross3 is the right-handed cross product of lanes 0 to 2 built from lane rotations.
func (a Float4) Cross3(b Float4) Float4 {
	t := a.Shuffle(1, 2, 0, 3)
	v := b.Shuffle(1, 2, 0, 3)
	v = v.Mul(a).Sub(t.Mul(b))
	return v.Shuffle(1, 2, 0, 3).MaskXYZ()
}

// RSqrt approximates 1/sqrt per lane.
func (a Float4) RSqrt() Float4 {
	return Float4{
		mathutil.FastRSqrt(a[0]),
		mathutil.FastRSqrt(a[1]),
		mathutil.FastRSqrt(a[2]),
		mathutil.FastRSqrt(a[3]),
	}
}

// Equal reports whether all four lanes compare equal.
func (a Float4) Equal(b Float4) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

// LessEqual reports whether every lane of a is <= the matching lane of b.
func (a Float4) LessEqual(b Float4) bool {
	return a[0] <= b[0] && a[1] <= b[1] && a[2] <= b[2] && a[3] <= b[3]
}

func (a Float4) Vec4() mgl32.Vec4 {
	return mgl32.Vec4(a)
}

func (a Float4) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}
