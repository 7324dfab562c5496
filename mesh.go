package objsoup

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is laid out for direct upload: position then normal, 24 bytes.
type Vertex struct {
	Pos  mgl32.Vec3
	Norm mgl32.Vec3
}

// Mesh is a triangle soup. Triangle i owns Vertices[3i:3i+3] and its indices
// are always 3i, 3i+1, 3i+2; no vertex is shared between triangles.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TODO: weld vertices that share a position and normal to shrink the buffers.
func NewMesh(tris []Triangle) *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, len(tris)*3),
		Indices:  make([]uint32, 0, len(tris)*3),
	}
	for i, tri := range tris {
		for _, v := range tri.Verts {
			m.Vertices = append(m.Vertices, Vertex{Pos: v, Norm: tri.Normal})
		}
		base := uint32(i) * 3
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m
}

func ParseMesh(src []byte, opts ...Option) (*Mesh, error) {
	tris, err := ParseTriangles(src, TriangleIdentity, opts...)
	if err != nil {
		return nil, err
	}
	return NewMesh(tris), nil
}

func ReadMesh(r io.Reader, opts ...Option) (*Mesh, error) {
	tris, err := ReadTriangles(r, TriangleIdentity, opts...)
	if err != nil {
		return nil, err
	}
	return NewMesh(tris), nil
}

func LoadMesh(path string, opts ...Option) (*Mesh, error) {
	tris, err := LoadTriangles(path, TriangleIdentity, opts...)
	if err != nil {
		return nil, err
	}
	m := NewMesh(tris)
	Logger.Printf("Vertices: %d", len(m.Vertices))
	Logger.Printf("Indices: %d", len(m.Indices))
	return m, nil
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangles rebuilds the triangle list from the soup. Normals are copied, not
// recomputed.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		tris = append(tris, Triangle{
			Verts:  [3]mgl32.Vec3{a.Pos, b.Pos, c.Pos},
			Normal: a.Norm,
		})
	}
	return tris
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Indices, m.Indices)
	return c
}
