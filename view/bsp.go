package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/smasonuk/objsoup"
)

// Points closer than this to a splitting plane count as on it.
const planeThickness = 1e-4

// Only this many faces are tried as the splitting plane of a node.
const maxPlaneCandidates = 32

// fragment is a mesh triangle, or a piece of one cut by a splitting plane.
// Pieces keep the normal and index of the triangle they came from.
type fragment struct {
	verts  [3]mgl32.Vec3
	normal mgl32.Vec3
	index  int
}

type plane struct {
	normal mgl32.Vec3
	d      float32
}

func planeOf(f fragment) plane {
	return plane{normal: f.normal, d: f.normal.Dot(f.verts[0])}
}

// side is positive in front of the plane, negative behind and zero within
// planeThickness of it.
func (p plane) side(v mgl32.Vec3) float32 {
	dist := p.normal.Dot(v) - p.d
	if dist > -planeThickness && dist < planeThickness {
		return 0
	}
	return dist
}

func (p plane) crosses(f fragment) bool {
	var front, back bool
	for _, v := range f.verts {
		s := p.side(v)
		front = front || s > 0
		back = back || s < 0
	}
	return front && back
}

// where sums the signed distances of the corners; a fragment with a sum of
// zero or less belongs behind the plane.
func (p plane) where(f fragment) float32 {
	var sum float32
	for _, v := range f.verts {
		sum += p.side(v)
	}
	return sum
}

// split cuts f along the plane and returns the pieces behind and in front of
// it, each fanned back into triangles with the original winding.
func (p plane) split(f fragment) (back, front []fragment) {
	var backPts, frontPts []mgl32.Vec3
	for i := 0; i < 3; i++ {
		a, b := f.verts[i], f.verts[(i+1)%3]
		sa, sb := p.side(a), p.side(b)
		if sa >= 0 {
			frontPts = append(frontPts, a)
		}
		if sa <= 0 {
			backPts = append(backPts, a)
		}
		if (sa > 0 && sb < 0) || (sa < 0 && sb > 0) {
			da := p.normal.Dot(a) - p.d
			db := p.normal.Dot(b) - p.d
			mid := a.Add(b.Sub(a).Mul(da / (da - db)))
			frontPts = append(frontPts, mid)
			backPts = append(backPts, mid)
		}
	}
	return fan(backPts, f), fan(frontPts, f)
}

func fan(pts []mgl32.Vec3, like fragment) []fragment {
	var out []fragment
	for i := 1; i+1 < len(pts); i++ {
		out = append(out, fragment{
			verts:  [3]mgl32.Vec3{pts[0], pts[i], pts[i+1]},
			normal: like.normal,
			index:  like.index,
		})
	}
	return out
}

type bspNode struct {
	frag  fragment
	plane plane
	back  *bspNode
	front *bspNode
}

// Tree is a BSP tree over the triangles of a mesh. Walking it from the eye
// gives a back-to-front order that stays correct for faces that cut through
// each other, at the cost of splitting them.
type Tree struct {
	root  *bspNode
	count int
}

// NewTree builds a tree from the world-space triangles of m. Degenerate
// triangles are left out.
func NewTree(m *objsoup.Mesh) *Tree {
	frags := make([]fragment, 0, m.TriangleCount())
	for i, tri := range m.Triangles() {
		if tri.Degenerate() {
			continue
		}
		frags = append(frags, fragment{verts: tri.Verts, normal: tri.Normal, index: i})
	}

	t := &Tree{}
	t.root = t.build(frags)
	return t
}

// Len returns the number of fragments in the tree, splits included.
func (t *Tree) Len() int {
	return t.count
}

func (t *Tree) build(frags []fragment) *bspNode {
	if len(frags) == 0 {
		return nil
	}

	chosen := choosePlane(frags)
	node := &bspNode{frag: frags[chosen], plane: planeOf(frags[chosen])}
	t.count++

	var back, front []fragment
	for i, f := range frags {
		if i == chosen {
			continue
		}
		if node.plane.crosses(f) {
			b, fr := node.plane.split(f)
			back = append(back, b...)
			front = append(front, fr...)
		} else if node.plane.where(f) <= 0 {
			back = append(back, f)
		} else {
			front = append(front, f)
		}
	}

	node.back = t.build(back)
	node.front = t.build(front)
	return node
}

// choosePlane picks the fragment whose plane cuts the fewest others.
func choosePlane(frags []fragment) int {
	best, bestCuts := 0, len(frags)
	for chosen := 0; chosen < len(frags) && chosen < maxPlaneCandidates; chosen++ {
		p := planeOf(frags[chosen])
		cuts := 0
		for i, f := range frags {
			if i != chosen && p.crosses(f) {
				cuts++
			}
		}
		if cuts < bestCuts {
			best, bestCuts = chosen, cuts
			if cuts == 0 {
				break
			}
		}
	}
	return best
}

// Project walks the tree from the camera and returns the visible fragments
// back to front. Polygon.Index names the mesh triangle a fragment came from.
func (t *Tree) Project(cam *Camera, width, height int, light Light) []Polygon {
	if width <= 0 || height <= 0 {
		return nil
	}
	p := newProjector(cam, width, height, light)
	eye := cam.Eye()

	polys := make([]Polygon, 0, t.count)
	var walk func(n *bspNode)
	walk = func(n *bspNode) {
		if n == nil {
			return
		}
		near, far := n.back, n.front
		if n.plane.normal.Dot(eye)-n.plane.d > 0 {
			near, far = n.front, n.back
		}
		walk(far)
		if poly, ok := p.project(n.frag.verts, n.frag.normal, n.frag.index); ok {
			polys = append(polys, poly)
		}
		walk(near)
	}
	walk(t.root)
	return polys
}
