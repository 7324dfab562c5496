// Package view turns a mesh into shaded screen-space polygons for a 2D
// canvas.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.1
	farPlane  = 1000.0

	// keep just short of straight up or down
	maxPitch = math.Pi/2 - 0.01
)

// Camera orbits Target at Distance. Yaw turns around the world Y axis and
// Pitch tilts towards it.
type Camera struct {
	Target   mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Distance float32
	FOV      float32
}

func NewCamera(distance float32) *Camera {
	return &Camera{
		Distance: distance,
		FOV:      mgl32.DegToRad(60),
	}
}

func (c *Camera) Drag(dx, dy float32) {
	c.Yaw += dx
	c.Pitch = mgl32.Clamp(c.Pitch+dy, -maxPitch, maxPitch)
}

// Zoom scales the orbit distance; factors below one move closer.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance *= factor
}

// View maps world space to camera space. The camera looks down -Z.
func (c *Camera) View() mgl32.Mat4 {
	view := mgl32.Translate3D(0, 0, -c.Distance)
	view = view.Mul4(mgl32.HomogRotate3DX(c.Pitch))
	view = view.Mul4(mgl32.HomogRotate3DY(-c.Yaw))
	return view.Mul4(mgl32.Translate3D(-c.Target[0], -c.Target[1], -c.Target[2]))
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, nearPlane, farPlane)
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.View().Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}
