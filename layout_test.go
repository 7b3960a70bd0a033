package wireframe

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("VertexLayout() returned %d buffers, want 1", len(layouts))
	}

	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}
	if len(l.Attributes) != 1 {
		t.Fatalf("layout has %d attributes, want 1", len(l.Attributes))
	}

	a := l.Attributes[0]
	if a.Format != gputypes.VertexFormatFloat32x3 {
		t.Errorf("attribute format = %v, want float32x3", a.Format)
	}
	if a.Offset != 0 || a.ShaderLocation != 0 {
		t.Errorf("attribute offset/location = %d/%d, want 0/0", a.Offset, a.ShaderLocation)
	}
}

func TestVertexStrideMatchesBuffer(t *testing.T) {
	// Three float32s per vertex.
	if VertexStride != 12 {
		t.Errorf("VertexStride = %d, want 12", VertexStride)
	}
}

func TestIndexFormatAndTopology(t *testing.T) {
	if got := IndexFormat(); got != gputypes.IndexFormatUint32 {
		t.Errorf("IndexFormat() = %v, want uint32", got)
	}
	if got := Topology(); got != gputypes.PrimitiveTopologyLineList {
		t.Errorf("Topology() = %v, want line list", got)
	}
}

func TestBufferUsageFlags(t *testing.T) {
	if u := VertexBufferUsage(); u&gputypes.BufferUsageVertex == 0 || u&gputypes.BufferUsageCopyDst == 0 {
		t.Errorf("VertexBufferUsage() = %v, want vertex|copy-dst", u)
	}
	if u := IndexBufferUsage(); u&gputypes.BufferUsageIndex == 0 || u&gputypes.BufferUsageCopyDst == 0 {
		t.Errorf("IndexBufferUsage() = %v, want index|copy-dst", u)
	}
}
