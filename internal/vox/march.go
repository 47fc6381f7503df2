package vox

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ResultKind tags the outcome of one traversal.
type ResultKind int

const (
	// HitNone: the ray left the chunk grid without finding a surface.
	// The invocation contributes nothing (discard).
	HitNone ResultKind = iota
	// HitOpaque: an opaque voxel was found; Color carries its sample.
	HitOpaque
	// HitFarField: the distance field reported open space beyond
	// FarFieldCutoff; Dist carries the sampled distance. A coarse
	// early-out, not a surface.
	HitFarField
	// HitExhausted: the outer iteration cap was reached without a
	// definitive outcome.
	HitExhausted
)

// AxisMask records which axis (or axes, on exact ties) the most recent
// DDA step crossed.
type AxisMask struct {
	X, Y, Z bool
}

// Result is the traversal outcome. Which fields are meaningful depends
// on Kind; Iters and Mask are always populated.
type Result struct {
	Kind  ResultKind
	Color RGBA    // HitOpaque
	Dist  float32 // HitFarField
	Iters int     // outer iterations performed
	Mask  AxisMask
}

// March walks the chunk's voxel grid from a local-space entry point
// along a local-space unit direction. Empty space is skipped in jumps of
// floor(dist) voxels using the distance field; each candidate voxel is
// tested against the color volume for an opaque hit. The walk ends on
// the first of: opaque voxel, far-field early-out, grid exit, or the
// outer iteration cap.
func March(a *Atlas, chunk ChunkCoord, entry, dir mgl32.Vec3) Result {
	// Nudge off the box surface so a max-face entry doesn't floor to
	// ChunkSize before the first step.
	entry = entry.Add(dir.Mul(entryNudge))

	mp := MapPoint{
		X: int(floorf(entry.X())),
		Y: int(floorf(entry.Y())),
		Z: int(floorf(entry.Z())),
	}

	// Per-axis distance along the ray to cross one voxel. A zero
	// direction component yields +Inf and that axis is never stepped.
	deltaDist := mgl32.Vec3{
		abs1(dir.X()),
		abs1(dir.Y()),
		abs1(dir.Z()),
	}

	var step MapPoint
	var sideDist mgl32.Vec3
	step.X, sideDist[0] = axisSetup(entry.X(), mp.X, dir.X(), deltaDist.X())
	step.Y, sideDist[1] = axisSetup(entry.Y(), mp.Y, dir.Y(), deltaDist.Y())
	step.Z, sideDist[2] = axisSetup(entry.Z(), mp.Z, dir.Z(), deltaDist.Z())

	var mask AxisMask
	for it := 0; it < MaxMarchIters; it++ {
		if !InChunk(mp) {
			return Result{Kind: HitNone, Iters: it, Mask: mask}
		}

		c := a.ColorAt(chunk, mp)
		if c.A == 1 {
			return Result{Kind: HitOpaque, Color: c, Iters: it, Mask: mask}
		}

		dist := a.DistAt(chunk, mp)
		if dist > FarFieldCutoff {
			return Result{Kind: HitFarField, Dist: dist, Iters: it, Mask: mask}
		}

		steps := int(dist)
		if steps < 1 {
			steps = 1
		}
		for s := 0; s < steps; s++ {
			mask = smallestAxis(sideDist)
			if mask.X {
				sideDist[0] += deltaDist.X()
				mp.X += step.X
			}
			if mask.Y {
				sideDist[1] += deltaDist.Y()
				mp.Y += step.Y
			}
			if mask.Z {
				sideDist[2] += deltaDist.Z()
				mp.Z += step.Z
			}
			if !InChunk(mp) {
				return Result{Kind: HitNone, Iters: it + 1, Mask: mask}
			}
		}
	}

	return Result{Kind: HitExhausted, Iters: MaxMarchIters, Mask: mask}
}

// axisSetup computes the step direction and initial boundary distance
// for one axis from the entry point's fractional position in its voxel.
func axisSetup(pos float32, cell int, dir, delta float32) (int, float32) {
	if dir < 0 {
		return -1, (pos - float32(cell)) * delta
	}
	return 1, (float32(cell) + 1 - pos) * delta
}

// smallestAxis marks every axis whose boundary is nearest along the ray.
// Exact ties mark several axes and the step advances all of them, the
// same comparison scheme the branchless grid walk uses.
func smallestAxis(side mgl32.Vec3) AxisMask {
	return AxisMask{
		X: side.X() <= side.Y() && side.X() <= side.Z(),
		Y: side.Y() <= side.Z() && side.Y() <= side.X(),
		Z: side.Z() <= side.X() && side.Z() <= side.Y(),
	}
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func abs1(v float32) float32 {
	if v < 0 {
		v = -v
	}
	return 1 / v
}
