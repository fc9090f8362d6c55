// Package mathutil holds the float32 scalar helpers shared by the geometric kernel.
package mathutil

import (
	"cmp"
	"math"
)

// Epsilon is the float32 machine epsilon (FLT_EPSILON).
const Epsilon float32 = 1.1920929e-07

const (
	Pi     float32 = math.Pi
	HalfPi float32 = math.Pi / 2
)

func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// SetMin stores b into a when b is smaller.
func SetMin[T cmp.Ordered](a *T, b T) {
	if b < *a {
		*a = b
	}
}

// SetMax stores b into a when b is larger.
func SetMax[T cmp.Ordered](a *T, b T) {
	if b > *a {
		*a = b
	}
}

func Clamp[T cmp.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// Lerp returns a at t = 0 and b at t = 1.
func Lerp(t, a, b float32) float32 {
	return (1-t)*a + t*b
}

// Radian converts degrees to radians.
func Radian(deg float32) float32 {
	return float32(math.Pi/180) * deg
}

// Degree converts radians to degrees.
func Degree(rad float32) float32 {
	return float32(180/math.Pi) * rad
}

func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

func Sincos(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

func Acos(x float32) float32     { return float32(math.Acos(float64(x))) }
func Asin(x float32) float32     { return float32(math.Asin(float64(x))) }
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func Inf(sign int) float32 {
	return float32(math.Inf(sign))
}

// DisplayScalar snaps values below Epsilon in magnitude to 0. It is meant for printing only.
func DisplayScalar(x float32) float32 {
	if Abs(x) < Epsilon {
		return 0
	}
	return x
}
