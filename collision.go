package objsoup

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ungerik/go3d/float64/vec3"
)

// A small epsilon value for the determinant test; smaller values mean the
// segment runs parallel to the triangle.
const epsilon = 1e-9

// CollisionTri is a double precision triangle for picking and collision
// queries. Normal is zero for a degenerate triangle.
type CollisionTri struct {
	A, B, C  vec3.T
	Normal   vec3.T
	Min, Max vec3.T
}

func toVec3(v mgl32.Vec3) vec3.T {
	return vec3.T{float64(v[0]), float64(v[1]), float64(v[2])}
}

func CollisionTriFromTriangle(t Triangle) CollisionTri {
	ct := CollisionTri{
		A: toVec3(t.Verts[0]),
		B: toVec3(t.Verts[1]),
		C: toVec3(t.Verts[2]),
	}

	e1 := vec3.Sub(&ct.B, &ct.A)
	e2 := vec3.Sub(&ct.C, &ct.A)
	n := vec3.Cross(&e1, &e2)
	if l := n.Length(); l > 0 && !math.IsInf(l, 0) {
		ct.Normal = n.Scaled(1 / l)
	}

	ct.Min, ct.Max = ct.A, ct.A
	for _, p := range []vec3.T{ct.B, ct.C} {
		for axis := 0; axis < 3; axis++ {
			ct.Min[axis] = math.Min(ct.Min[axis], p[axis])
			ct.Max[axis] = math.Max(ct.Max[axis], p[axis])
		}
	}
	return ct
}

func (t *CollisionTri) Degenerate() bool {
	return t.Normal == vec3.T{}
}

// IntersectSegment returns how far along from->to the segment meets the
// triangle, as a fraction in [0, 1].
func (t *CollisionTri) IntersectSegment(from, to *vec3.T) (float64, bool) {
	if t.Degenerate() {
		return 0, false
	}

	dir := vec3.Sub(to, from)
	e1 := vec3.Sub(&t.B, &t.A)
	e2 := vec3.Sub(&t.C, &t.A)

	p := vec3.Cross(&dir, &e2)
	det := vec3.Dot(&e1, &p)
	if !(det > epsilon || det < -epsilon) {
		return 0, false
	}
	inv := 1 / det

	s := vec3.Sub(from, &t.A)
	u := vec3.Dot(&s, &p) * inv
	if !(u >= 0 && u <= 1) {
		return 0, false
	}

	q := vec3.Cross(&s, &e1)
	v := vec3.Dot(&dir, &q) * inv
	if !(v >= 0 && u+v <= 1) {
		return 0, false
	}

	frac := vec3.Dot(&e2, &q) * inv
	if !(frac >= 0 && frac <= 1) {
		return 0, false
	}
	return frac, true
}

type Hit struct {
	Index    int
	Fraction float64
	Point    vec3.T
}

// CollisionSoup is an unindexed list of triangles with an overall bounding
// box. It shares nothing with the render mesh.
type CollisionSoup struct {
	Tris     []CollisionTri
	Min, Max vec3.T
}

func NewCollisionSoup(tris []CollisionTri) *CollisionSoup {
	cs := &CollisionSoup{Tris: tris}
	for i := range tris {
		if i == 0 {
			cs.Min, cs.Max = tris[0].Min, tris[0].Max
			continue
		}
		for axis := 0; axis < 3; axis++ {
			cs.Min[axis] = math.Min(cs.Min[axis], tris[i].Min[axis])
			cs.Max[axis] = math.Max(cs.Max[axis], tris[i].Max[axis])
		}
	}
	return cs
}

func LoadCollisionSoup(path string, opts ...Option) (*CollisionSoup, error) {
	tris, err := LoadTriangles(path, CollisionTriFromTriangle, opts...)
	if err != nil {
		return nil, err
	}
	return NewCollisionSoup(tris), nil
}

// IntersectSegment finds the hit nearest to from.
func (cs *CollisionSoup) IntersectSegment(from, to vec3.T) (Hit, bool) {
	var segMin, segMax vec3.T
	for axis := 0; axis < 3; axis++ {
		segMin[axis] = math.Min(from[axis], to[axis])
		segMax[axis] = math.Max(from[axis], to[axis])
	}
	if !overlaps(&segMin, &segMax, &cs.Min, &cs.Max) {
		return Hit{}, false
	}

	best := Hit{Index: -1, Fraction: math.Inf(1)}
	for i := range cs.Tris {
		t := &cs.Tris[i]
		if !overlaps(&segMin, &segMax, &t.Min, &t.Max) {
			continue
		}
		if frac, ok := t.IntersectSegment(&from, &to); ok && frac < best.Fraction {
			best.Index = i
			best.Fraction = frac
		}
	}
	if best.Index < 0 {
		return Hit{}, false
	}

	dir := vec3.Sub(&to, &from)
	step := dir.Scaled(best.Fraction)
	best.Point = vec3.Add(&from, &step)
	return best, true
}

func overlaps(aMin, aMax, bMin, bMax *vec3.T) bool {
	for axis := 0; axis < 3; axis++ {
		if aMax[axis] < bMin[axis] || aMin[axis] > bMax[axis] {
			return false
		}
	}
	return true
}
