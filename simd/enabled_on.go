//go:build !ayascalar

package simd

// Enabled selects the packed code paths of the geometric kernel.
const Enabled = true
