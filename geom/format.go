package geom

import (
	"strconv"
	"strings"

	"github.com/akmonengine/aya/mathutil"
)

// formatScalars writes "[ a, b, c ]". Values below Epsilon in magnitude print as 0.
func formatScalars(sb *strings.Builder, xs ...float32) {
	sb.WriteString("[ ")
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(mathutil.DisplayScalar(x)), 'g', -1, 32))
	}
	sb.WriteString(" ]")
}

func formatTriple(x, y, z float32) string {
	var sb strings.Builder
	formatScalars(&sb, x, y, z)
	return sb.String()
}

func (a Vector3) String() string { return formatTriple(a.v[0], a.v[1], a.v[2]) }
func (p Point3) String() string  { return formatTriple(p.v[0], p.v[1], p.v[2]) }
func (n Normal3) String() string { return formatTriple(n.v[0], n.v[1], n.v[2]) }

func (q Quaternion) String() string {
	var sb strings.Builder
	formatScalars(&sb, q.v[0], q.v[1], q.v[2], q.v[3])
	return sb.String()
}

// String prints one row per line.
func (m Matrix3x3) String() string {
	var sb strings.Builder
	for i, r := range m.r {
		if i > 0 {
			sb.WriteByte('\n')
		}
		formatScalars(&sb, r[0], r[1], r[2])
	}
	return sb.String()
}

func (b BBox) String() string {
	return "[pmin = " + b.Min.String() + ", pmax = " + b.Max.String() + "]"
}

func (t Transform) String() string {
	return "[matrix = " + t.m.String() + ", translation = " + t.t.String() + "]"
}
