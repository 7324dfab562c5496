package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDragClampsPitch(t *testing.T) {
	cam := NewCamera(5)

	cam.Drag(0.5, 10)
	assert.Equal(t, float32(0.5), cam.Yaw)
	assert.Equal(t, float32(maxPitch), cam.Pitch)

	cam.Drag(-0.5, -20)
	assert.Equal(t, float32(0), cam.Yaw)
	assert.Equal(t, float32(-maxPitch), cam.Pitch)
}

func TestCameraZoom(t *testing.T) {
	testCases := []struct {
		name     string
		factor   float32
		expected float32
	}{
		{name: "Closer", factor: 0.5, expected: 4},
		{name: "Further", factor: 2, expected: 16},
		{name: "Zero is ignored", factor: 0, expected: 8},
		{name: "Negative is ignored", factor: -1, expected: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(8)
			cam.Zoom(tc.factor)
			assert.Equal(t, tc.expected, cam.Distance)
		})
	}
}

func TestCameraViewPutsTargetAtDistance(t *testing.T) {
	cam := NewCamera(7)
	cam.Target = mgl32.Vec3{1, 2, 3}
	cam.Drag(0.7, 0.3)

	p := cam.View().Mul4x1(cam.Target.Vec4(1))
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -7, p.Z(), 1e-5)
	assert.InDelta(t, 1, p.W(), 1e-6)
}
