package vox

import "github.com/go-gl/mathgl/mgl32"

// Ray is a world-space ray, one per invocation.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3 // unit length
}

// Unprojector reconstructs world-space rays from screen positions. The
// matrix inversions are done once at construction so per-pixel ray setup
// is two matrix-vector products.
type Unprojector struct {
	invProj mgl32.Mat4
	invView mgl32.Mat4
	res     mgl32.Vec2
	eye     mgl32.Vec3
}

// NewUnprojector captures the camera state for one frame. Matrices are
// assumed invertible; that is the caller's precondition.
func NewUnprojector(proj, view mgl32.Mat4, res mgl32.Vec2) Unprojector {
	invView := view.Inv()
	return Unprojector{
		invProj: proj.Inv(),
		invView: invView,
		res:     res,
		eye:     invView.Col(3).Vec3(),
	}
}

// Eye returns the camera's world position.
func (u Unprojector) Eye() mgl32.Vec3 {
	return u.eye
}

// Ray casts through a screen position (pixel coordinates, y down).
func (u Unprojector) Ray(screen mgl32.Vec2) Ray {
	ndc := mgl32.Vec2{
		2*screen.X()/u.res.X() - 1,
		1 - 2*screen.Y()/u.res.Y(),
	}

	// Unproject a near-plane point, then run it through the inverse view.
	near := u.invProj.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	near = near.Mul(1 / near.W())
	world := u.invView.Mul4x1(mgl32.Vec4{near.X(), near.Y(), near.Z(), 1}).Vec3()

	return Ray{
		Origin: u.eye,
		Dir:    world.Sub(u.eye).Normalize(),
	}
}

// UnprojectRay is the one-shot form for callers that don't amortize the
// inversions across a frame.
func UnprojectRay(screen, res mgl32.Vec2, proj, view mgl32.Mat4) Ray {
	return NewUnprojector(proj, view, res).Ray(screen)
}
