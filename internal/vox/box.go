package vox

import "github.com/go-gl/mathgl/mgl32"

// NoHit is the intersector's miss sentinel.
const NoHit = float32(-1)

// OrientedBox is one chunk's bounding cube: half-extent HalfExtent on
// every axis, positioned and oriented by the composed model transform
// (base model transform translated by the chunk's offset within the
// cubelet, which is kept centered on the model-space origin).
type OrientedBox struct {
	Chunk ChunkCoord

	transform mgl32.Mat4
	inverse   mgl32.Mat4
}

// NewOrientedBox composes the box transform for one chunk tile. tiles is
// the cubelet's chunk count per axis (Atlas.Tiles).
func NewOrientedBox(model mgl32.Mat4, chunk ChunkCoord, tiles int) OrientedBox {
	half := float32(tiles) * HalfExtent
	offset := mgl32.Vec3{
		float32(chunk.X*ChunkSize) + HalfExtent - half,
		float32(chunk.Y*ChunkSize) + HalfExtent - half,
		float32(chunk.Z*ChunkSize) + HalfExtent - half,
	}
	t := model.Mul4(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
	return OrientedBox{
		Chunk:     chunk,
		transform: t,
		inverse:   t.Inv(),
	}
}

// Center returns the box center in world space.
func (b *OrientedBox) Center() mgl32.Vec3 {
	return b.transform.Col(3).Vec3()
}

// Intersect runs the slab method against the box's three axis columns
// and returns the entry distance along the ray, clamped to >= 0 so a ray
// starting inside the box reports an intersection at 0. Misses return
// NoHit. A ray parallel to a slab (zero projection) divides by zero and
// the resulting Inf/NaN bounds flow through IEEE-754 comparisons
// untouched.
func (b *OrientedBox) Intersect(origin, dir mgl32.Vec3) float32 {
	delta := b.Center().Sub(origin)

	tMin := float32(0)
	tMax := float32(1e9)

	for i := 0; i < 3; i++ {
		axis := b.transform.Col(i).Vec3()
		e := axis.Dot(delta)
		f := axis.Dot(dir)

		t1 := (e - HalfExtent) / f
		t2 := (e + HalfExtent) / f
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMax < tMin {
			return NoHit
		}
	}

	return tMin
}

// LocalPoint maps a world-space point into the chunk's local voxel space:
// inverse transform, then +HalfExtent per axis so coordinates land in
// [0, ChunkSize).
func (b *OrientedBox) LocalPoint(world mgl32.Vec3) mgl32.Vec3 {
	p := b.inverse.Mul4x1(mgl32.Vec4{world.X(), world.Y(), world.Z(), 1}).Vec3()
	return mgl32.Vec3{p.X() + HalfExtent, p.Y() + HalfExtent, p.Z() + HalfExtent}
}

// LocalDir rotates a world-space direction into chunk-local space. The
// w=0 product drops the inverse transform's translation; the result is
// re-normalized.
func (b *OrientedBox) LocalDir(world mgl32.Vec3) mgl32.Vec3 {
	d := b.inverse.Mul4x1(mgl32.Vec4{world.X(), world.Y(), world.Z(), 0}).Vec3()
	return d.Normalize()
}
