package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-fly camera: yaw/pitch from captured-mouse deltas,
// WASD planar movement rotated by yaw, Space/LeftShift vertical.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float64 // radians, around world y
	Pitch    float64 // radians, clamped short of +-pi/2

	Speed float64
}

// Update applies one frame of input. Mouse deltas are only consumed
// while the cursor is captured.
func (c *Camera) Update(window *glfw.Window, in *Input, dt float64, captured bool) {
	if captured {
		dx, dy := in.CursorDelta(window)
		c.Yaw -= dx / MouseSens
		c.Pitch -= dy / MouseSens
		c.Pitch = clampF(c.Pitch, -math.Pi/2+0.1, math.Pi/2-0.1)
	}

	var mx, mz, my float64
	if window.GetKey(glfw.KeyW) == glfw.Press {
		mz -= 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		mz += 1
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		mx -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		mx += 1
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		my += 1
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		my -= 1
	}

	// Planar movement follows yaw only, so looking down doesn't slow
	// walking.
	if mx != 0 || mz != 0 {
		l := math.Hypot(mx, mz)
		mx, mz = mx/l, mz/l
		sin, cos := math.Sincos(c.Yaw)
		wx := mx*cos + mz*sin
		wz := -mx*sin + mz*cos
		c.Position[0] += float32(wx * c.Speed * dt)
		c.Position[2] += float32(wz * c.Speed * dt)
	}
	c.Position[1] += float32(my * c.Speed * dt)
}

// Transform builds the camera's world transform from yaw and pitch.
func (c *Camera) Transform() mgl32.Mat4 {
	t := mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z())
	return t.Mul4(mgl32.HomogRotate3DY(float32(c.Yaw))).
		Mul4(mgl32.HomogRotate3DX(float32(c.Pitch)))
}

// View is the inverse of the camera transform.
func (c *Camera) View() mgl32.Mat4 {
	return c.Transform().Inv()
}

// Projection builds the perspective matrix for the framebuffer aspect.
func Projection(fovDeg float64, w, h int) mgl32.Mat4 {
	return mgl32.Perspective(
		mgl32.DegToRad(float32(fovDeg)),
		float32(w)/float32(h),
		NearPlane, FarPlane,
	)
}
