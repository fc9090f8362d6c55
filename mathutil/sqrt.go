package mathutil

import "math"

// FastRSqrt approximates 1/sqrt(x) with a bit-level initial guess refined by two
// Newton-Raphson steps. The relative error stays below 1e-5 for positive normal inputs.
// FastRSqrt(0) is +Inf and negative inputs yield NaN, like the precise form.
func FastRSqrt(x float32) float32 {
	switch {
	case x == 0:
		return float32(math.Inf(1))
	case x < 0 || x != x:
		return float32(math.NaN())
	case math.IsInf(float64(x), 1):
		return 0
	}

	half := 0.5 * x
	y := math.Float32frombits(0x5f375a86 - math.Float32bits(x)>>1)
	y *= 1.5 - half*y*y
	y *= 1.5 - half*y*y
	return y
}

// RSqrt returns 1/sqrt(x), approximated when built with the ayafastmath tag.
func RSqrt(x float32) float32 {
	if FastMath {
		return FastRSqrt(x)
	}
	return float32(1 / math.Sqrt(float64(x)))
}

// Sqrt returns sqrt(x), approximated as 1/RSqrt(x) when built with the ayafastmath tag.
func Sqrt(x float32) float32 {
	if FastMath {
		return 1 / FastRSqrt(x)
	}
	return float32(math.Sqrt(float64(x)))
}
