package game

import (
	"runtime"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"cubelet/internal/vox"
)

// Frame is the software framebuffer: one ray-traversal invocation per
// pixel, rows fanned out across worker goroutines. Invocations share
// nothing mutable except their own row of Pix, so there is no
// synchronization beyond the per-frame WaitGroup.
type Frame struct {
	W, H int
	Pix  []uint8 // RGBA, row-major, y down

	boxes []vox.OrientedBox // per-frame chunk order, front to back
}

func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// Render traces the whole atlas into the framebuffer for one camera
// state. model is the base world transform (identity unless the world is
// spinning); sky is the background and fog color.
func (f *Frame) Render(a *vox.Atlas, model, proj, view mgl32.Mat4, sky vox.RGBA) {
	unproj := vox.NewUnprojector(proj, view, mgl32.Vec2{float32(f.W), float32(f.H)})
	eye := unproj.Eye()

	// Rebuild and order the chunk boxes front to back so the per-pixel
	// walk can stop at the first hit.
	f.boxes = f.boxes[:0]
	for cx := 0; cx < a.Tiles; cx++ {
		for cy := 0; cy < a.Tiles; cy++ {
			for cz := 0; cz < a.Tiles; cz++ {
				f.boxes = append(f.boxes,
					vox.NewOrientedBox(model, vox.ChunkCoord{X: cx, Y: cy, Z: cz}, a.Tiles))
			}
		}
	}
	sort.Slice(f.boxes, func(i, j int) bool {
		di := f.boxes[i].Center().Sub(eye).LenSqr()
		dj := f.boxes[j].Center().Sub(eye).LenSqr()
		return di < dj
	})

	workers := runtime.NumCPU()
	if workers > f.H {
		workers = f.H
	}
	rows := make(chan int, f.H)
	for y := 0; y < f.H; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				f.renderRow(a, unproj, y, sky)
			}
		}()
	}
	wg.Wait()
}

func (f *Frame) renderRow(a *vox.Atlas, unproj vox.Unprojector, y int, sky vox.RGBA) {
	for x := 0; x < f.W; x++ {
		ray := unproj.Ray(mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5})
		col := f.tracePixel(a, ray, sky)
		i := (y*f.W + x) * 4
		f.Pix[i+0] = toByte(col.R)
		f.Pix[i+1] = toByte(col.G)
		f.Pix[i+2] = toByte(col.B)
		f.Pix[i+3] = toByte(col.A)
	}
}

// tracePixel walks the ordered chunk list: intersect, transform into
// chunk space, march, shade. The first non-discard result wins; a miss
// on every chunk falls through to the sky gradient. An intersector miss
// skips the chunk outright — the kernel is never started from a
// negative entry distance.
func (f *Frame) tracePixel(a *vox.Atlas, ray vox.Ray, sky vox.RGBA) vox.RGBA {
	for i := range f.boxes {
		b := &f.boxes[i]
		t := b.Intersect(ray.Origin, ray.Dir)
		if t < 0 {
			continue
		}
		hit := ray.Origin.Add(ray.Dir.Mul(t))
		entry := b.LocalPoint(hit)
		dir := b.LocalDir(ray.Dir)

		res := vox.March(a, b.Chunk, entry, dir)
		if col, ok := vox.Shade(res, sky); ok {
			return col
		}
	}
	return skyGradient(ray.Dir, sky)
}

// skyGradient darkens the sky toward the horizon and below.
func skyGradient(dir mgl32.Vec3, sky vox.RGBA) vox.RGBA {
	t := 0.6 + 0.4*clamp01f(dir.Y()*0.5+0.5)
	return vox.RGBA{R: sky.R * t, G: sky.G * t, B: sky.B * t, A: 1}
}

func toByte(v float32) uint8 {
	v = clamp01f(v)
	return uint8(v*255 + 0.5)
}
