package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVector3_Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vector3
		expected Vector3
	}{
		{"Add", a.Add(b), NewVector3(5, -3, 9)},
		{"Sub", a.Sub(b), NewVector3(-3, 7, -3)},
		{"Neg", a.Neg(), NewVector3(-1, -2, -3)},
		{"Mul", a.Mul(2), NewVector3(2, 4, 6)},
		{"Div", b.Div(2), NewVector3(2, -2.5, 3)},
		{"MulVector", a.MulVector(b), NewVector3(4, -10, 18)},
		{"Abs", b.Abs(), NewVector3(4, 5, 6)},
		{"Min", a.Min(b), NewVector3(1, -5, 3)},
		{"Max", a.Max(b), NewVector3(4, 2, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector3_CompoundAssign(t *testing.T) {
	v := NewVector3(1, 2, 3)
	v.AddAssign(NewVector3(1, 1, 1))
	v.MulAssign(2)
	v.SubAssign(NewVector3(0, 2, 4))
	v.DivAssign(4)
	if v != NewVector3(1, 1, 1) {
		t.Errorf("compound ops = %v, expected [ 1, 1, 1 ]", v)
	}

	v.SetMin(NewVector3(0, 5, 0.5))
	if v != NewVector3(0, 1, 0.5) {
		t.Errorf("SetMin = %v", v)
	}
	v.SetMax(NewVector3(2, 0, 0))
	if v != NewVector3(2, 1, 0.5) {
		t.Errorf("SetMax = %v", v)
	}

	v.SetValue(7, 8, 9)
	if v.X() != 7 || v.Y() != 8 || v.Z() != 9 {
		t.Errorf("SetValue = %v", v)
	}
	v.SetZero()
	if !v.IsZero() {
		t.Errorf("SetZero = %v", v)
	}
}

func TestVector3_At(t *testing.T) {
	v := NewVector3(4, 5, 6)
	for i, want := range []float32{4, 5, 6} {
		if v.At(i) != want {
			t.Errorf("At(%d) = %v, expected %v", i, v.At(i), want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("At(4) should panic")
		}
	}()
	v.At(4)
}

func TestVector3_NormalizeLength(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		v := randVector(rng)
		if v.Length2() < 1e-3 {
			continue
		}
		if l := v.Normalize().Length(); !almostEqual(l, 1, tolerance) {
			t.Fatalf("|normalize(%v)| = %v", v, l)
		}
	}
}

func TestVector3_SafeNormalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3
		expected Vector3
	}{
		{"zero falls back to x", NewVector3(0, 0, 0), NewVector3(1, 0, 0)},
		{"tiny falls back to x", NewVector3(1e-5, 0, 0), NewVector3(1, 0, 0)},
		{"regular", NewVector3(0, 3, 4), NewVector3(0, 0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.SafeNormalize(); !vec3AlmostEqual(got, tt.expected, tolerance) {
				t.Errorf("SafeNormalize() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector3_SafeLength(t *testing.T) {
	if l := NewVector3(1e-4, 0, 0).SafeLength(); l != 0 {
		t.Errorf("SafeLength of a tiny vector = %v, expected 0", l)
	}
	if l := NewVector3(3, 4, 0).SafeLength(); !almostEqual(l, 5, tolerance) {
		t.Errorf("SafeLength = %v, expected 5", l)
	}
}

func TestVector3_Cross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)
	if got := x.Cross(y); got != NewVector3(0, 0, 1) {
		t.Errorf("x × y = %v, expected z", got)
	}
	if got := x.Cross(x.Mul(3)); !got.IsZero() {
		t.Errorf("parallel cross = %v, expected zero", got)
	}

	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		a, b := randVector(rng), randVector(rng)
		ab, ba := a.Cross(b), b.Cross(a)
		if !vec3AlmostEqual(ab, ba.Neg(), tolerance) {
			t.Fatalf("a×b = %v, -(b×a) = %v", ab, ba.Neg())
		}
		// the dot grows with |a|²|b|, scale the tolerance with it
		if d := a.Dot(ab); !almostEqual(d, 0, 1e-5*a.Length2()*b.Length()+tolerance) {
			t.Fatalf("a·(a×b) = %v", d)
		}
		if !vec3AlmostEqual(ab, Vector3FromVec3(a.Vec3().Cross(b.Vec3())), tolerance) {
			t.Fatalf("cross %v, mgl32 %v", ab, a.Vec3().Cross(b.Vec3()))
		}
	}
}

func TestVector3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3
		axis     Normal3
		angle    float32
		expected Vector3
	}{
		{"half turn about z", NewVector3(1, 0, 0), NewNormal3(0, 0, 1), math.Pi, NewVector3(-1, 0, 0)},
		{"quarter turn about z", NewVector3(1, 0, 0), NewNormal3(0, 0, 1), math.Pi / 2, NewVector3(0, 1, 0)},
		{"quarter turn about x", NewVector3(0, 1, 0), NewNormal3(1, 0, 0), math.Pi / 2, NewVector3(0, 0, 1)},
		{"along the axis", NewVector3(0, 0, 2), NewNormal3(0, 0, 1), 1.234, NewVector3(0, 0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Rotate(tt.axis, tt.angle); !vec3AlmostEqual(got, tt.expected, tolerance) {
				t.Errorf("Rotate() = %v, expected %v", got, tt.expected)
			}
		})
	}

	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		v := randVector(rng)
		axis := randVector(rng).Normalize()
		angle := randScalar(rng, -math.Pi, math.Pi)

		want := mgl32.QuatRotate(angle, axis.Vec3()).Rotate(v.Vec3())
		if got := v.Rotate(Normal3(axis), angle); !vec3AlmostEqual(got, Vector3FromVec3(want), 1e-3) {
			t.Fatalf("Rotate(%v, %v) = %v, mgl32 %v", axis, angle, got, want)
		}
	}
}

func TestVector3_Angle(t *testing.T) {
	a := NewVector3(1, 0, 0)
	tests := []struct {
		name     string
		b        Vector3
		expected float32
	}{
		{"same", NewVector3(2, 0, 0), 0},
		{"perpendicular", NewVector3(0, 3, 0), math.Pi / 2},
		{"opposite", NewVector3(-1, 0, 0), math.Pi},
		{"diagonal", NewVector3(1, 1, 0), math.Pi / 4},
		{"nearly same", NewVector3(1, 1e-3, 0), 1e-3},
		{"nearly opposite", NewVector3(-1, 1e-3, 0), math.Pi - 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Angle(tt.b); !almostEqual(got, tt.expected, tolerance) {
				t.Errorf("Angle() = %v, expected %v", got, tt.expected)
			}
		})
	}

	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		u, v := randVector(rng), randVector(rng)
		if u.Length2() < 1e-2 || v.Length2() < 1e-2 {
			continue
		}
		if got := u.Angle(u.Mul(3)); !almostEqual(got, 0, tolerance) {
			t.Fatalf("Angle(%v, scaled self) = %v", u, got)
		}
		if got := u.Angle(u.Neg()); !almostEqual(got, math.Pi, tolerance) {
			t.Fatalf("Angle(%v, negated self) = %v", u, got)
		}
		if got, back := u.Angle(v), v.Angle(u); !almostEqual(got, back, tolerance) {
			t.Fatalf("Angle not symmetric: %v vs %v", got, back)
		}
	}
}

func TestVector3_MaxAxis(t *testing.T) {
	tests := []struct {
		v        Vector3
		expected int
	}{
		{NewVector3(3, 1, 2), 0},
		{NewVector3(1, 3, 2), 1},
		{NewVector3(1, 2, 3), 2},
		{NewVector3(2, 2, 2), 0},
		{NewVector3(-1, -5, -3), 0},
	}

	for _, tt := range tests {
		if got := tt.v.MaxAxis(); got != tt.expected {
			t.Errorf("MaxAxis(%v) = %d, expected %d", tt.v, got, tt.expected)
		}
	}
}

func TestVector3_FuzzyZero(t *testing.T) {
	if !NewVector3(1e-4, 0, 0).FuzzyZero() {
		t.Errorf("1e-4 should be fuzzy zero")
	}
	if NewVector3(0.01, 0, 0).FuzzyZero() {
		t.Errorf("0.01 should not be fuzzy zero")
	}
}

func TestPoint3(t *testing.T) {
	p := NewPoint3(1, 2, 3)
	q := NewPoint3(4, 6, 3)
	d := NewVector3(1, 1, 1)

	if got := p.Add(d); got != NewPoint3(2, 3, 4) {
		t.Errorf("Add = %v", got)
	}
	if got := p.SubVector(d); got != NewPoint3(0, 1, 2) {
		t.Errorf("SubVector = %v", got)
	}
	if got := q.SubPoint(p); got != NewVector3(3, 4, 0) {
		t.Errorf("SubPoint = %v", got)
	}
	if got := p.Distance(q); !almostEqual(got, 5, tolerance) {
		t.Errorf("Distance = %v, expected 5", got)
	}
	if got := p.Distance2(q); got != 25 {
		t.Errorf("Distance2 = %v, expected 25", got)
	}
	if got := p.Lerp(q, 0.5); !point3AlmostEqual(got, NewPoint3(2.5, 4, 3), tolerance) {
		t.Errorf("Lerp = %v", got)
	}
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, expected %v", got, p)
	}
	if got := p.Min(NewPoint3(0, 5, 3)); got != NewPoint3(0, 2, 3) {
		t.Errorf("Min = %v", got)
	}
	if got := p.Max(NewPoint3(0, 5, 3)); got != NewPoint3(1, 5, 3) {
		t.Errorf("Max = %v", got)
	}
	if p.At(2) != 3 {
		t.Errorf("At(2) = %v", p.At(2))
	}
}

func TestNormal3(t *testing.T) {
	n := NewNormal3(0, 0, 2)

	if got := n.Normalize(); !vec3AlmostEqual(Vector3(got), NewVector3(0, 0, 1), tolerance) {
		t.Errorf("Normalize = %v", got)
	}
	if got := NewNormal3(0, 0, 0).SafeNormalize(); got != NewNormal3(1, 0, 0) {
		t.Errorf("SafeNormalize of zero = %v", got)
	}
	if got := n.Length(); !almostEqual(got, 2, tolerance) {
		t.Errorf("Length = %v", got)
	}
	if got := n.Dot(NewNormal3(1, 1, 1)); got != 2 {
		t.Errorf("Dot = %v", got)
	}
	if got := n.Add(n).Sub(n).Mul(3).Div(2); got != NewNormal3(0, 0, 3) {
		t.Errorf("arithmetic = %v", got)
	}

	tests := []struct {
		name     string
		v        Vector3
		expected Normal3
	}{
		{"same side", NewVector3(0, 1, 1), n},
		{"other side", NewVector3(0, 1, -1), n.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.FaceForward(tt.v); got != tt.expected {
				t.Errorf("FaceForward() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector3_DotNormal(t *testing.T) {
	v := NewVector3(1, 2, 3)
	n := NewNormal3(0, 1, 0)
	if v.DotNormal(n) != 2 || n.DotVector(v) != 2 {
		t.Errorf("DotNormal = %v, DotVector = %v", v.DotNormal(n), n.DotVector(v))
	}
}

func BenchmarkVector3_Normalize(b *testing.B) {
	v := NewVector3(1, 2, 3)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v = v.Normalize().Mul(2)
	}
}

func BenchmarkVector3_Cross(b *testing.B) {
	v := NewVector3(1, 2, 3)
	w := NewVector3(3, 1, 2)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v = v.Cross(w).Normalize()
	}
}
