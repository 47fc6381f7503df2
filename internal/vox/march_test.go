package vox

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// flatAtlas builds a render-distance-1 atlas with every distance cell
// set to the same value and no occupied voxels.
func flatAtlas(dist float32) *Atlas {
	a := NewAtlas(1)
	for i := range a.Dist {
		a.Dist[i] = dist
	}
	return a
}

func TestMarchFarFieldFirstIteration(t *testing.T) {
	a := flatAtlas(6)
	res := March(a, ChunkCoord{}, mgl32.Vec3{0.5, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitFarField {
		t.Fatalf("Kind = %v, want HitFarField", res.Kind)
	}
	if res.Dist != 6 {
		t.Fatalf("Dist = %v, want 6", res.Dist)
	}
	if res.Iters != 0 {
		t.Fatalf("Iters = %v, want far-field on the first iteration", res.Iters)
	}
}

func TestMarchReachesSingleVoxel(t *testing.T) {
	a := NewAtlas(1)
	want := RGBA{R: 0.9, G: 0.2, B: 0.1, A: 1}
	a.SetVoxel(16, 16, 16, want)
	ComputeDistanceField(a)

	// Entry within skip range of the surface; the walk must land on the
	// voxel and return its exact color.
	res := March(a, ChunkCoord{}, mgl32.Vec3{11.5, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitOpaque {
		t.Fatalf("Kind = %v, want HitOpaque", res.Kind)
	}
	if res.Color != want {
		t.Fatalf("Color = %v, want %v", res.Color, want)
	}
	if !res.Mask.X || res.Mask.Y || res.Mask.Z {
		t.Fatalf("Mask = %+v, want x-only for an axis-aligned approach", res.Mask)
	}
}

func TestMarchDistantSurfaceIsFarField(t *testing.T) {
	a := NewAtlas(1)
	a.SetVoxel(16, 16, 16, RGBA{R: 1, A: 1})
	ComputeDistanceField(a)

	// Entering at the chunk face, the surface is 16 voxels away: the
	// coarse early-out fires before any stepping happens.
	res := March(a, ChunkCoord{}, mgl32.Vec3{0.5, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitFarField {
		t.Fatalf("Kind = %v, want HitFarField", res.Kind)
	}
	if res.Dist <= FarFieldCutoff {
		t.Fatalf("Dist = %v, want above the cutoff", res.Dist)
	}
}

func TestMarchExitsSideFace(t *testing.T) {
	a := flatAtlas(1)
	res := March(a, ChunkCoord{}, mgl32.Vec3{31.5, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitNone {
		t.Fatalf("Kind = %v, want HitNone after leaving the grid", res.Kind)
	}
}

func TestMarchAngledExit(t *testing.T) {
	a := flatAtlas(1)
	// Enter through the -x face angled steeply upward: exits through the
	// top long before reaching the far side.
	dir := mgl32.Vec3{1, 4, 0}.Normalize()
	res := March(a, ChunkCoord{}, mgl32.Vec3{0.5, 28.5, 16.5}, dir)
	if res.Kind != HitNone {
		t.Fatalf("Kind = %v, want HitNone", res.Kind)
	}
}

func TestMarchExhaustsIterationCap(t *testing.T) {
	a := flatAtlas(0)
	res := March(a, ChunkCoord{}, mgl32.Vec3{0.5, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitExhausted {
		t.Fatalf("Kind = %v, want HitExhausted", res.Kind)
	}
	if res.Iters != MaxMarchIters {
		t.Fatalf("Iters = %v, want %v", res.Iters, MaxMarchIters)
	}
}

func TestMarchInnerStepCount(t *testing.T) {
	a := flatAtlas(3)
	a.SetVoxel(9, 16, 16, RGBA{R: 1, A: 1})

	// Uniform dist 3 means exactly 3 voxels per outer iteration: the
	// voxel at x=9 is sampled on the fourth (3 skip iterations + 1).
	res := March(a, ChunkCoord{}, mgl32.Vec3{0.5, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitOpaque {
		t.Fatalf("Kind = %v, want HitOpaque", res.Kind)
	}
	if res.Iters != 3 {
		t.Fatalf("Iters = %v, want 3", res.Iters)
	}
}

func TestMarchDiagonalTiesAdvanceAllAxes(t *testing.T) {
	a := flatAtlas(1)
	want := RGBA{R: 0.3, G: 0.3, B: 0.8, A: 1}
	a.SetVoxel(5, 5, 5, want)

	res := March(a, ChunkCoord{}, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 1}.Normalize())
	if res.Kind != HitOpaque {
		t.Fatalf("Kind = %v, want HitOpaque", res.Kind)
	}
	if res.Color != want {
		t.Fatalf("Color = %v, want %v", res.Color, want)
	}
	// Exact ties mark every axis and advance them together.
	if !res.Mask.X || !res.Mask.Y || !res.Mask.Z {
		t.Fatalf("Mask = %+v, want all axes on a perfect diagonal", res.Mask)
	}
	if res.Iters != 5 {
		t.Fatalf("Iters = %v, want 5 joint steps", res.Iters)
	}
}

func TestMarchEntryOutsideGridDiscards(t *testing.T) {
	a := flatAtlas(1)
	res := March(a, ChunkCoord{}, mgl32.Vec3{40, 16.5, 16.5}, mgl32.Vec3{1, 0, 0})
	if res.Kind != HitNone {
		t.Fatalf("Kind = %v, want HitNone for an out-of-grid entry", res.Kind)
	}
}

func TestSmallestAxisMask(t *testing.T) {
	cases := []struct {
		side mgl32.Vec3
		want AxisMask
	}{
		{mgl32.Vec3{1, 2, 3}, AxisMask{X: true}},
		{mgl32.Vec3{3, 1, 2}, AxisMask{Y: true}},
		{mgl32.Vec3{3, 2, 1}, AxisMask{Z: true}},
		{mgl32.Vec3{1, 1, 2}, AxisMask{X: true, Y: true}},
		{mgl32.Vec3{1, 1, 1}, AxisMask{X: true, Y: true, Z: true}},
	}
	for _, c := range cases {
		if got := smallestAxis(c.side); got != c.want {
			t.Errorf("smallestAxis(%v) = %+v, want %+v", c.side, got, c.want)
		}
	}
}
