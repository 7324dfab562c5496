package objsoup

import "github.com/go-gl/mathgl/mgl32"

// Bounds returns the corners of the axis-aligned box around every vertex.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}

	lo, hi = m.Vertices[0].Pos, m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Pos[axis] < lo[axis] {
				lo[axis] = v.Pos[axis]
			} else if v.Pos[axis] > hi[axis] {
				hi[axis] = v.Pos[axis]
			}
		}
	}
	return lo, hi
}

func (m *Mesh) Extents() (x, y, z float32) {
	lo, hi := m.Bounds()
	size := hi.Sub(lo)
	return size[0], size[1], size[2]
}

// Centre moves every vertex so the centre of the bounding box sits at the
// origin.
func (m *Mesh) Centre() {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi := m.Bounds()
	c := lo.Add(hi).Mul(0.5)
	m.Translate(-c[0], -c[1], -c[2])
}

func (m *Mesh) Translate(x, y, z float32) {
	d := mgl32.Vec3{x, y, z}
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Add(d)
	}
}

// Scale multiplies every position by scale. Normals are left alone, so scale
// should be positive.
func (m *Mesh) Scale(scale float32) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Mul(scale)
	}
}
