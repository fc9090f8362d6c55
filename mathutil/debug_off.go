//go:build !ayadebug

package mathutil

// Debug enables precondition assertions.
const Debug = false
