package wireframe

// World-space extent of the sampled patch. The surface is sampled over
// the square [-1, 1] x [-1, 1] and shifted down so the bowl sits roughly
// centered on the origin.
const (
	surfaceXStart float32 = -1.0
	surfaceYStart float32 = -1.0
	surfaceWidth  float32 = 2.0
	surfaceHeight float32 = 2.0

	// surfaceShift lowers z = x^2 + 2y^2 so the patch straddles z = 0.
	surfaceShift float32 = -2.0
)

// GenerateMesh samples the elliptic paraboloid z = x^2 + 2y^2 (plus a
// constant vertical shift) on an nxPts x nyPts grid and writes float32
// (x, y, z) triples into dst in row-major order.
//
// Exactly the first 3*nxPts*nyPts entries of dst are overwritten;
// anything beyond is left untouched. If either dimension exceeds its cap
// (MaxWidth, MaxHeight) nothing is written at all: no partial buffers.
//
// Both dimensions must be at least 2 (the grid spacing divides by
// nxPts-1 and nyPts-1); that is a caller contract, not a checked error.
// dst must hold at least 3*nxPts*nyPts floats.
func GenerateMesh(dst []float32, nxPts, nyPts uint32) {
	if nxPts > MaxWidth || nyPts > MaxHeight {
		Logger().Debug("wireframe: mesh generation skipped, grid exceeds caps",
			"cols", nxPts, "rows", nyPts, "maxCols", MaxWidth, "maxRows", MaxHeight)
		return
	}

	dx := surfaceWidth / float32(nxPts-1)
	dy := surfaceHeight / float32(nyPts-1)

	idx := 0
	for yIdx := uint32(0); yIdx < nyPts; yIdx++ {
		y := surfaceYStart + float32(yIdx)*dy

		for xIdx := uint32(0); xIdx < nxPts; xIdx++ {
			x := surfaceXStart + float32(xIdx)*dx
			z := x*x + 2.0*y*y + surfaceShift

			dst[idx] = x
			dst[idx+1] = y
			dst[idx+2] = z
			idx += 3
		}
	}
}
