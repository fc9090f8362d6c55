//go:build !ayafastmath

package mathutil

// FastMath reports whether RSqrt and Sqrt use the Newton-refined approximation.
const FastMath = false
