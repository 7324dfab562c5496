package vklayout

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"

	"github.com/smasonuk/objsoup"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uint32(24), Stride)

	b := Binding(2)
	assert.Equal(t, uint32(2), b.Binding)
	assert.Equal(t, Stride, b.Stride)
	assert.Equal(t, vk.VertexInputRateVertex, b.InputRate)

	attrs := Attributes(2)
	require.Len(t, attrs, 2)
	assert.Equal(t, uint32(PositionLocation), attrs[0].Location)
	assert.Equal(t, uint32(0), attrs[0].Offset)
	assert.Equal(t, uint32(NormalLocation), attrs[1].Location)
	assert.Equal(t, uint32(12), attrs[1].Offset)
	for _, a := range attrs {
		assert.Equal(t, uint32(2), a.Binding)
		assert.Equal(t, vk.FormatR32g32b32Sfloat, a.Format)
	}
}

func TestBufferBytes(t *testing.T) {
	m, err := objsoup.ParseMesh([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)

	vb := VertexBytes(m)
	require.Len(t, vb, 3*int(Stride))
	// second vertex position x, then the first normal component z
	assert.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(vb[24:28])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(vb[20:24])))

	ib := IndexBytes(m)
	require.Len(t, ib, 3*4)
	assert.Equal(t, uint32(2), binary.NativeEndian.Uint32(ib[8:12]))

	empty := objsoup.NewMesh(nil)
	assert.Nil(t, VertexBytes(empty))
	assert.Nil(t, IndexBytes(empty))
}
