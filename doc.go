// Package wireframe computes per-frame geometry for an animated elliptic
// paraboloid wireframe.
//
// # Overview
//
// wireframe is a pure Go geometry core designed to sit behind a host
// renderer in the GoGPU ecosystem. The host owns the window, the device,
// and the draw calls; this package owns only the math: sampling the
// surface onto a regular grid of vertices, connecting those vertices into
// wireframe line segments, and rotating the vertex buffer in place once
// per frame. Everything crosses the boundary as flat numeric buffers.
//
// # Quick Start
//
//	import "github.com/gogpu/wireframe"
//
//	// Fill the process-owned buffers for a 64x64 grid.
//	store := wireframe.Default()
//	store.GenerateMesh(64, 64)
//	store.GenerateIndices(64, 64)
//
//	// Per frame: advance the rotation and spin the mesh in place.
//	wireframe.SetRotationAngle(0.02)
//	wireframe.RotateMesh(store.Vertices(), 64*64)
//
//	// Hand the buffer locations to the host renderer (zero-copy).
//	vtx := wireframe.VertexBufferLocation()
//	idx := wireframe.IndexBufferLocation()
//	_, _ = vtx, idx
//
// # Architecture
//
// The package is organized into:
//   - Core: Grid, GenerateMesh, GenerateIndices, Rotation, BufferStore
//   - Host interop: buffer locations plus gputypes layout descriptors
//   - preview/: optional CPU renderer for inspecting frames without a GPU
//
// # Buffer Layout
//
// The vertex buffer holds float32 (x, y, z) triples in row-major grid
// order; the index buffer holds uint32 vertex-id pairs, one pair per line
// segment. Both buffers are allocated once at the maximum grid size and
// live for the whole process, so locations handed to the host stay valid.
// VertexLayout, IndexFormat, and Topology describe the same layout in
// WebGPU terms for hosts that upload the buffers.
//
// # Numerical Model
//
// SetRotationAngle uses truncated Taylor polynomials for cosine and sine
// rather than exact trigonometry. The host advances the angle by small
// per-frame increments, where the truncation error is negligible, and the
// polynomial keeps the per-frame path free of transcendental calls. This
// is a deliberate tradeoff; the coefficients are part of the contract.
package wireframe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
