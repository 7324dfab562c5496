package view

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/smasonuk/objsoup"
)

// Light is a directional light. Dir points from the surface towards the
// light and need not be normalised.
type Light struct {
	Dir     mgl32.Vec3
	Ambient float32
}

func DefaultLight() Light {
	return Light{Dir: mgl32.Vec3{0.3, 0.6, 1}, Ambient: 0.2}
}

// Polygon is one visible triangle in screen coordinates, y down.
type Polygon struct {
	X, Y  [3]float32
	Depth float32
	Shade float32
	Index int
}

// Project returns the triangles of m that face the camera and lie in front of
// the near plane, farthest first, so drawing them in order paints over
// hidden surfaces. Triangles that pass through each other can still overlap
// wrongly; a Tree orders those correctly.
func Project(m *objsoup.Mesh, cam *Camera, width, height int, light Light) []Polygon {
	if width <= 0 || height <= 0 {
		return nil
	}
	p := newProjector(cam, width, height, light)

	polys := make([]Polygon, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Vertices[i*3 : i*3+3]
		poly, ok := p.project([3]mgl32.Vec3{tri[0].Pos, tri[1].Pos, tri[2].Pos}, tri[0].Norm, i)
		if ok {
			polys = append(polys, poly)
		}
	}

	sort.SliceStable(polys, func(a, b int) bool {
		return polys[a].Depth > polys[b].Depth
	})
	return polys
}

type projector struct {
	view, proj mgl32.Mat4
	w, h       float32
	lightDir   mgl32.Vec3
	ambient    float32
}

func newProjector(cam *Camera, width, height int, light Light) *projector {
	w, h := float32(width), float32(height)
	return &projector{
		view:     cam.View(),
		proj:     cam.Projection(w / h),
		w:        w,
		h:        h,
		lightDir: light.Dir.Normalize(),
		ambient:  light.Ambient,
	}
}

// project maps one world-space triangle to the screen. It reports false for
// a degenerate, back-facing or clipped triangle.
func (p *projector) project(verts [3]mgl32.Vec3, norm mgl32.Vec3, index int) (Polygon, bool) {
	if isNaN(norm) {
		return Polygon{}, false
	}

	var poly Polygon
	for c, v := range verts {
		vp := p.view.Mul4x1(v.Vec4(1))
		if -vp.Z() < nearPlane {
			return Polygon{}, false
		}
		clip := p.proj.Mul4x1(vp)
		ndc := clip.Vec3().Mul(1 / clip.W())
		poly.X[c] = (ndc.X() + 1) / 2 * p.w
		poly.Y[c] = (1 - ndc.Y()) / 2 * p.h
		poly.Depth += -vp.Z() / 3
	}

	// counter-clockwise in world space turns clockwise once y points down
	area := (poly.X[1]-poly.X[0])*(poly.Y[2]-poly.Y[0]) - (poly.X[2]-poly.X[0])*(poly.Y[1]-poly.Y[0])
	if area >= 0 {
		return Polygon{}, false
	}

	poly.Shade = mgl32.Clamp(norm.Dot(p.lightDir), p.ambient, 1)
	poly.Index = index
	return poly, true
}

func isNaN(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) {
			return true
		}
	}
	return false
}
