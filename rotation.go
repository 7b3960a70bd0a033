package wireframe

import "sync"

// Taylor coefficients for the small-angle cosine and sine polynomials:
//
//	cos(a) ~ 1 - a^2/2 + a^4/24
//	sin(a) ~ a * (1 - a^2/6)
//
// The truncation order and coefficient values are part of the numeric
// contract; hosts advance the angle by small per-frame steps where the
// error is well below float32 precision.
const (
	cosC0 float32 = +1.00000000e+00
	cosC1 float32 = -5.00000000e-01
	cosC2 float32 = +4.16666667e-02

	sinC0 float32 = +1.00000000e+00
	sinC1 float32 = -1.66666667e-01
)

// smallAngleCosine evaluates the cosine polynomial in Horner form.
// asq is the squared angle.
func smallAngleCosine(asq float32) float32 {
	return cosC0 + asq*(cosC1+asq*cosC2)
}

// smallAngleSine evaluates the sine polynomial in Horner form.
// a is the angle, asq its square.
func smallAngleSine(a, asq float32) float32 {
	return a * (sinC0 + asq*sinC1)
}

// Rotation holds the current rotation angle together with its cached
// cosine and sine. The three values are updated together under the lock,
// so a concurrent reader always observes a mutually consistent triple.
//
// Rotation tracks only the most recently set angle. Apply rotates a
// buffer by that angle each call, so repeated calls compose additively;
// cumulative-angle bookkeeping is the caller's concern.
//
// Use NewRotation; the zero value has an inconsistent cached cosine.
type Rotation struct {
	mu    sync.Mutex
	angle float32
	cos   float32
	sin   float32
}

// NewRotation returns rotation state at angle 0 (cos 1, sin 0).
func NewRotation() *Rotation {
	return &Rotation{cos: 1}
}

// SetAngle updates the angle and recomputes the cached cosine and sine
// with the small-angle polynomials. The angle is in radians and expected
// to be small; the approximation degrades away from zero.
func (r *Rotation) SetAngle(angle float32) {
	asq := angle * angle
	cos := smallAngleCosine(asq)
	sin := smallAngleSine(angle, asq)

	r.mu.Lock()
	r.angle = angle
	r.cos = cos
	r.sin = sin
	r.mu.Unlock()
}

// Angle returns the most recently set angle.
func (r *Rotation) Angle() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.angle
}

// CosSin returns the cached cosine and sine as a consistent pair.
func (r *Rotation) CosSin() (cos, sin float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cos, r.sin
}

// Apply rotates the first nPts vertices of buf about the z axis in
// place, using the cached cosine and sine:
//
//	x' = cos*x - sin*y
//	y' = cos*y + sin*x
//
// Each vertex occupies three consecutive floats; z is left untouched.
// buf must hold at least 3*nPts floats, which is the caller's contract.
//
// The cached pair is snapshotted once, so every vertex in a single call
// is rotated by the same angle even if SetAngle runs concurrently.
func (r *Rotation) Apply(buf []float32, nPts uint32) {
	cos, sin := r.CosSin()

	for i := uint32(0); i < nPts; i++ {
		xIdx := 3 * i
		yIdx := xIdx + 1

		x := buf[xIdx]
		y := buf[yIdx]

		buf[xIdx] = cos*x - sin*y
		buf[yIdx] = cos*y + sin*x
	}
}
