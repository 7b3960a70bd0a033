package wireframe

import (
	"math"
	"sync"
	"testing"
)

func TestNewRotationInitialState(t *testing.T) {
	r := NewRotation()
	if a := r.Angle(); a != 0 {
		t.Errorf("Angle() = %g, want 0", a)
	}
	cos, sin := r.CosSin()
	if cos != 1.0 || sin != 0.0 {
		t.Errorf("CosSin() = (%g, %g), want (1, 0)", cos, sin)
	}
}

func TestSetAngleZeroIsExact(t *testing.T) {
	r := NewRotation()
	r.SetAngle(0.5)
	r.SetAngle(0)

	cos, sin := r.CosSin()
	if cos != 1.0 {
		t.Errorf("cos = %g, want exactly 1.0", cos)
	}
	if sin != 0.0 {
		t.Errorf("sin = %g, want exactly 0.0", sin)
	}
}

func TestSetAnglePolynomial(t *testing.T) {
	// The cached values follow the truncated Taylor polynomials, not
	// exact trigonometry. For small angles the truncation error is far
	// below float32 precision, so the cache must also agree with the
	// exact functions to a tight tolerance.
	angles := []float32{0.001, 0.01, 0.02, 0.05, 0.1}
	for _, a := range angles {
		r := NewRotation()
		r.SetAngle(a)
		cos, sin := r.CosSin()

		a64 := float64(a)
		wantCos := 1 - a64*a64/2 + a64*a64*a64*a64/24
		wantSin := a64 * (1 - a64*a64/6)

		if diff := math.Abs(float64(cos) - wantCos); diff > 1e-6 {
			t.Errorf("angle %g: cos = %g, want Taylor value %g (diff %g)", a, cos, wantCos, diff)
		}
		if diff := math.Abs(float64(sin) - wantSin); diff > 1e-6 {
			t.Errorf("angle %g: sin = %g, want Taylor value %g (diff %g)", a, sin, wantSin, diff)
		}
		if diff := math.Abs(float64(cos) - math.Cos(a64)); diff > 1e-6 {
			t.Errorf("angle %g: cos = %g, drifts from exact %g by %g", a, cos, math.Cos(a64), diff)
		}
		if diff := math.Abs(float64(sin) - math.Sin(a64)); diff > 1e-6 {
			t.Errorf("angle %g: sin = %g, drifts from exact %g by %g", a, sin, math.Sin(a64), diff)
		}
	}
}

func TestApplyZeroAngleIsIdentity(t *testing.T) {
	buf := []float32{0.25, -0.5, 1, -1, 1, -2, 0.125, 0.75, 3}
	orig := append([]float32(nil), buf...)

	r := NewRotation()
	r.Apply(buf, 3)

	for i := range buf {
		if buf[i] != orig[i] {
			t.Errorf("entry %d = %g, want %g (identity)", i, buf[i], orig[i])
		}
	}
}

func TestApplyLeavesZUntouched(t *testing.T) {
	buf := []float32{0.3, 0.4, -1.5, -0.2, 0.9, 2.25}

	r := NewRotation()
	r.SetAngle(0.1)
	r.Apply(buf, 2)

	if buf[2] != -1.5 || buf[5] != 2.25 {
		t.Errorf("z values = (%g, %g), want (-1.5, 2.25)", buf[2], buf[5])
	}
}

func TestApplyRoundTrip(t *testing.T) {
	// Rotating by an angle and then by its negation returns every (x, y)
	// to the original within the approximation's error. The polynomial
	// cosine is even and sine is odd, so the two steps compose to a
	// scaling by cos^2+sin^2, which is 1 to well under 1e-5 for small
	// angles.
	buf := []float32{0.8, -0.6, 1, -0.3, 0.7, -2, 1, 1, 0}
	orig := append([]float32(nil), buf...)

	r := NewRotation()
	r.SetAngle(0.05)
	r.Apply(buf, 3)
	r.SetAngle(-0.05)
	r.Apply(buf, 3)

	for i := range buf {
		if diff := math.Abs(float64(buf[i] - orig[i])); diff > 1e-5 {
			t.Errorf("entry %d = %g, want %g within 1e-5 (diff %g)", i, buf[i], orig[i], diff)
		}
	}
}

func TestApplyRotationMatrix(t *testing.T) {
	// One vertex at (1, 0): after rotating by a the position must be
	// (cos a, sin a) with the cached values.
	r := NewRotation()
	r.SetAngle(0.1)
	cos, sin := r.CosSin()

	buf := []float32{1, 0, 5}
	r.Apply(buf, 1)

	if buf[0] != cos || buf[1] != sin {
		t.Errorf("rotated (1, 0) = (%g, %g), want (%g, %g)", buf[0], buf[1], cos, sin)
	}
}

func TestApplyRespectsPointCount(t *testing.T) {
	// Only the first nPts vertices are rotated.
	buf := []float32{1, 0, 0, 1, 0, 0}

	r := NewRotation()
	r.SetAngle(0.2)
	r.Apply(buf, 1)

	if buf[3] != 1 || buf[4] != 0 {
		t.Errorf("vertex beyond nPts = (%g, %g), want (1, 0)", buf[3], buf[4])
	}
	if buf[0] == 1 && buf[1] == 0 {
		t.Error("vertex inside nPts was not rotated")
	}
}

func TestCosSinConsistentUnderConcurrency(t *testing.T) {
	// A reader must never observe a cosine from one angle paired with a
	// sine from another. Two writers toggle between two angles while
	// readers check that each observed pair belongs to one of them.
	r := NewRotation()

	type pair struct{ cos, sin float32 }
	valid := make(map[pair]bool)
	for _, a := range []float32{0.01, 0.07} {
		asq := a * a
		valid[pair{smallAngleCosine(asq), smallAngleSine(a, asq)}] = true
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for _, a := range []float32{0.01, 0.07} {
		wg.Add(1)
		go func(angle float32) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					r.SetAngle(angle)
				}
			}
		}(a)
	}

	r.SetAngle(0.01)
	for i := 0; i < 10000; i++ {
		cos, sin := r.CosSin()
		if !valid[pair{cos, sin}] {
			t.Errorf("observed torn pair (%g, %g)", cos, sin)
			break
		}
	}
	close(stop)
	wg.Wait()
}

func BenchmarkSetAngle(b *testing.B) {
	r := NewRotation()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.SetAngle(0.02)
	}
}

func BenchmarkApply(b *testing.B) {
	g := Grid{Cols: 128, Rows: 128}
	buf := make([]float32, g.VertexFloats())
	GenerateMesh(buf, g.Cols, g.Rows)

	r := NewRotation()
	r.SetAngle(0.02)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Apply(buf, g.PointCount())
	}
}
