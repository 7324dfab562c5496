package view

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/objsoup"
)

func indicesOf(polys []Polygon) []int {
	out := make([]int, 0, len(polys))
	for _, p := range polys {
		out = append(out, p.Index)
	}
	return out
}

func TestTreeOrdersParallelLayers(t *testing.T) {
	tree := NewTree(meshOf(t, facing(0), facing(-3), facing(2)))
	assert.Equal(t, 3, tree.Len())

	polys := tree.Project(NewCamera(5), screenW, screenH, DefaultLight())
	assert.Equal(t, []int{1, 0, 2}, indicesOf(polys))
}

// A triangle that passes through another is split so the part behind it is
// drawn first and the part in front last. Sorting whole triangles by depth
// draws all of it after.
func TestTreeSplitsInterpenetratingTriangles(t *testing.T) {
	wall := objsoup.NewTriangle(mgl32.Vec3{-2, -2, 0}, mgl32.Vec3{2, -2, 0}, mgl32.Vec3{-2, 2, 0})
	through := objsoup.NewTriangle(mgl32.Vec3{0, -1, -1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{-1, 0, 1})
	m := meshOf(t, wall, through)
	cam := NewCamera(5)

	sorted := Project(m, cam, screenW, screenH, DefaultLight())
	assert.Equal(t, []int{0, 1}, indicesOf(sorted))

	tree := NewTree(m)
	require.Equal(t, 4, tree.Len())

	polys := tree.Project(cam, screenW, screenH, DefaultLight())
	require.Len(t, polys, 4)

	wallAt := -1
	for i, p := range polys {
		if p.Index == 0 {
			require.Equal(t, -1, wallAt, "wall drawn twice")
			wallAt = i
		}
	}
	require.NotEqual(t, -1, wallAt)

	wallDepth := polys[wallAt].Depth
	for i, p := range polys {
		switch {
		case i < wallAt:
			assert.Greater(t, p.Depth, wallDepth, "fragment %d drawn before the wall", i)
		case i > wallAt:
			assert.Less(t, p.Depth, wallDepth, "fragment %d drawn after the wall", i)
		}
	}
	assert.Equal(t, 1, wallAt)
}

func TestTreeMatchesProjectOnConvexMesh(t *testing.T) {
	m, err := objsoup.LoadMesh(filepath.Join("..", "testdata", "cube.obj"))
	require.NoError(t, err)

	tree := NewTree(m)
	assert.Equal(t, 12, tree.Len())

	cam := NewCamera(5)
	assert.ElementsMatch(t, []int{0, 1}, indicesOf(tree.Project(cam, screenW, screenH, DefaultLight())))

	cam.Drag(math.Pi/2, 0)
	assert.ElementsMatch(t, []int{4, 5}, indicesOf(tree.Project(cam, screenW, screenH, DefaultLight())))
}

func TestTreeSkipsDegenerateTriangles(t *testing.T) {
	flat := objsoup.NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0})
	tree := NewTree(meshOf(t, flat, facing(0)))
	assert.Equal(t, 1, tree.Len())

	polys := tree.Project(NewCamera(5), screenW, screenH, DefaultLight())
	assert.Equal(t, []int{1}, indicesOf(polys))
}

func TestEmptyTree(t *testing.T) {
	tree := NewTree(objsoup.NewMesh(nil))
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Project(NewCamera(5), screenW, screenH, DefaultLight()))
	assert.Nil(t, tree.Project(NewCamera(5), 0, 0, DefaultLight()))
}

func TestCameraEye(t *testing.T) {
	cam := NewCamera(5)
	eye := cam.Eye()
	assert.InDelta(t, 0, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Y(), 1e-5)
	assert.InDelta(t, 5, eye.Z(), 1e-5)

	cam.Target = mgl32.Vec3{1, 0, 0}
	cam.Drag(math.Pi/2, 0)
	eye = cam.Eye()
	assert.InDelta(t, 6, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Z(), 1e-5)
}
