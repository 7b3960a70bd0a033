// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wireframe

import "github.com/gogpu/gputypes"

// VertexStride is the byte stride of one vertex: three float32s.
const VertexStride = 3 * 4

// VertexLayout returns the WebGPU vertex buffer layout matching the
// vertex buffer produced by GenerateMesh: one attribute, float32x3
// position at shader location 0, stepped per vertex.
//
// Hosts that upload the buffer pass this to their render pipeline
// descriptor; the package itself never touches a device.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// IndexFormat returns the index element format of the buffer produced by
// GenerateIndices.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// Topology returns the primitive topology the index buffer encodes:
// a line list, two indices per segment.
func Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyLineList
}

// VertexBufferUsage returns the usage flags a host needs when creating
// the GPU-side copy of the vertex buffer: bound as a vertex buffer and
// rewritten from the CPU every frame.
func VertexBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
}

// IndexBufferUsage returns the usage flags for the GPU-side copy of the
// index buffer. Connectivity changes only when the grid resolution does,
// but it is still uploaded through a queue write, hence CopyDst.
func IndexBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
}
