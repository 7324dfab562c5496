// Package vklayout describes objsoup vertex and index buffers to a Vulkan
// pipeline.
package vklayout

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/smasonuk/objsoup"
)

const (
	PositionLocation = 0
	NormalLocation   = 1
)

// IndexType matches objsoup.Mesh.Indices.
const IndexType = vk.IndexTypeUint32

var vertex objsoup.Vertex

// Stride is the size of one objsoup.Vertex in bytes.
const Stride = uint32(unsafe.Sizeof(objsoup.Vertex{}))

func Binding(binding uint32) vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    Stride,
		InputRate: vk.VertexInputRateVertex,
	}
}

func Attributes(binding uint32) []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: PositionLocation,
			Binding:  binding,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(vertex.Pos)),
		},
		{
			Location: NormalLocation,
			Binding:  binding,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(vertex.Norm)),
		},
	}
}

// VertexBytes returns the vertex buffer of m as raw bytes for a staging copy.
// The slice aliases m.Vertices.
func VertexBytes(m *objsoup.Mesh) []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Vertices[0])), len(m.Vertices)*int(Stride))
}

func IndexBytes(m *objsoup.Mesh) []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Indices[0])), len(m.Indices)*4)
}
