package wireframe

import (
	"sync"
	"unsafe"
)

// Capacity of the process-owned buffers, in elements. Both are sized for
// the maximum grid so that the active grid can change without ever
// reallocating, keeping handed-out locations valid for the process
// lifetime.
const (
	// VertexBufferSize is the float32 capacity of the vertex buffer.
	VertexBufferSize uint32 = 3 * maxPoints
	// IndexBufferSize is the uint32 capacity of the index buffer.
	IndexBufferSize uint32 = 2 * (2*maxPoints - MaxWidth - MaxHeight)
)

// BufferStore owns the vertex and index buffers shared with the host
// renderer. The backing arrays are allocated with the store and never
// reallocated or resized; the host reads them zero-copy through the
// location accessors and must treat the capacity as fixed.
//
// The mutex serializes store-level operations (generation, rotation,
// reset) against each other. It does not provide cross-call atomicity:
// a host driving "set angle, rotate, read" from multiple goroutines must
// serialize that sequence itself.
type BufferStore struct {
	mu       sync.Mutex
	vertices [VertexBufferSize]float32
	indices  [IndexBufferSize]uint32
}

// defaultStore backs the package-level API. Hosts that want an isolated
// store (tests, multiple surfaces) allocate their own BufferStore.
var (
	defaultStore    BufferStore
	defaultRotation = NewRotation()
)

// Default returns the process-wide buffer store used by the package-level
// functions.
func Default() *BufferStore {
	return &defaultStore
}

// Vertices returns the full-capacity vertex buffer as a slice. The slice
// aliases the store's backing array; it is valid for the process lifetime
// and is the same memory named by VertexLocation.
func (s *BufferStore) Vertices() []float32 {
	return s.vertices[:]
}

// Indices returns the full-capacity index buffer as a slice, aliasing
// the store's backing array.
func (s *BufferStore) Indices() []uint32 {
	return s.indices[:]
}

// VertexLocation returns the address of the vertex buffer for zero-copy
// consumption by the host. No size accompanies it: the capacity is the
// fixed VertexBufferSize convention.
func (s *BufferStore) VertexLocation() uintptr {
	return uintptr(unsafe.Pointer(&s.vertices[0]))
}

// IndexLocation returns the address of the index buffer for zero-copy
// consumption by the host.
func (s *BufferStore) IndexLocation() uintptr {
	return uintptr(unsafe.Pointer(&s.indices[0]))
}

// GenerateMesh fills the store's vertex buffer for an nxPts x nyPts grid
// under the store lock. See GenerateMesh for the fill contract.
func (s *BufferStore) GenerateMesh(nxPts, nyPts uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	GenerateMesh(s.vertices[:], nxPts, nyPts)
}

// GenerateIndices fills the store's index buffer for an nxPts x nyPts
// grid under the store lock. See GenerateIndices for the fill contract.
func (s *BufferStore) GenerateIndices(nxPts, nyPts uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	GenerateIndices(s.indices[:], nxPts, nyPts)
}

// Rotate applies r to the first nPts vertices of the store's vertex
// buffer under the store lock.
func (s *BufferStore) Rotate(r *Rotation, nPts uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Apply(s.vertices[:], nPts)
}

// Reset zeroes both buffers. Hosts call it when switching surfaces so a
// smaller follow-up grid does not render stale geometry from a larger
// previous one.
func (s *BufferStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.vertices[:])
	clear(s.indices[:])
}

// SetRotationAngle updates the process-wide rotation state. See
// [Rotation.SetAngle].
func SetRotationAngle(angle float32) {
	defaultRotation.SetAngle(angle)
}

// RotateMesh rotates the first nPts vertices of buf in place using the
// process-wide rotation state. See [Rotation.Apply].
func RotateMesh(buf []float32, nPts uint32) {
	defaultRotation.Apply(buf, nPts)
}

// VertexBufferLocation returns the address of the default store's vertex
// buffer.
func VertexBufferLocation() uintptr {
	return defaultStore.VertexLocation()
}

// IndexBufferLocation returns the address of the default store's index
// buffer.
func IndexBufferLocation() uintptr {
	return defaultStore.IndexLocation()
}
