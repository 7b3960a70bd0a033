package wireframe

import "fmt"

// Maximum grid dimensions. The shared buffers are sized for this grid
// once at process start; generation requests beyond either cap are
// ignored rather than partially written.
const (
	// MaxWidth is the maximum number of grid columns.
	MaxWidth uint32 = 512
	// MaxHeight is the maximum number of grid rows.
	MaxHeight uint32 = 512

	maxPoints uint32 = MaxWidth * MaxHeight
)

// Grid describes a Cols x Rows lattice of surface samples.
//
// Samples are row-major: the point at column x, row y has linear id
// y*Cols + x. That id is also its position in the vertex buffer (times
// three floats) and the value written into the index buffer.
type Grid struct {
	Cols uint32
	Rows uint32
}

// PointCount returns the number of sample points in the grid.
func (g Grid) PointCount() uint32 {
	return g.Cols * g.Rows
}

// VertexFloats returns the number of float32 values the grid's vertex
// data occupies: three per point.
func (g Grid) VertexFloats() uint32 {
	return 3 * g.PointCount()
}

// SegmentCount returns the number of wireframe line segments connecting
// adjacent grid points. Every point has a segment to its right neighbor
// and its up neighbor, except along the last column and last row:
//
//	segments = 2*Cols*Rows - Cols - Rows
func (g Grid) SegmentCount() uint32 {
	return 2*g.Cols*g.Rows - g.Cols - g.Rows
}

// IndexCount returns the number of uint32 entries the grid's wireframe
// connectivity occupies: two vertex ids per segment. This is the exact
// number of entries GenerateIndices writes for the grid.
func (g Grid) IndexCount() uint32 {
	return 2 * g.SegmentCount()
}

// LinearIndex returns the row-major id of the point at column x, row y.
func (g Grid) LinearIndex(x, y uint32) uint32 {
	return y*g.Cols + x
}

// Validate reports whether the grid is usable by the generators.
//
// The generators themselves never report failure: oversized grids are a
// silent no-op, and degenerate grids (a dimension below 2) are a caller
// contract violation. Hosts that want detection call Validate first.
func (g Grid) Validate() error {
	if g.Cols < 2 || g.Rows < 2 {
		return fmt.Errorf("wireframe: grid %dx%d is degenerate, both dimensions must be at least 2", g.Cols, g.Rows)
	}
	if g.Cols > MaxWidth || g.Rows > MaxHeight {
		return fmt.Errorf("wireframe: grid %dx%d exceeds maximum %dx%d", g.Cols, g.Rows, MaxWidth, MaxHeight)
	}
	return nil
}

// IndexCount returns the number of uint32 entries GenerateIndices writes
// for an nxPts x nyPts grid. Hosts use it to size or slice the index
// buffer before generation.
func IndexCount(nxPts, nyPts uint32) uint32 {
	return Grid{Cols: nxPts, Rows: nyPts}.IndexCount()
}
