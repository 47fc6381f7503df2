package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cubelet/internal/vox"
)

func RunDesktop() {
	runtime.LockOSThread()

	cfg, err := LoadConfig(configPath())
	if err != nil {
		panic(fmt.Errorf("config: %w", err))
	}

	// Seed from config, environment, or clock.
	seed := cfg.Seed
	if s := os.Getenv("CUBELET_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	atlas := loadOrGenerate(cfg, seed)

	window, err := initWindow(cfg.WindowW, cfg.WindowH)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// GL state: the blit is the only draw, nothing fancy needed.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	frame := NewFrame(cfg.WindowW/cfg.RenderScale, cfg.WindowH/cfg.RenderScale)
	sky := vox.RGBA{R: cfg.Sky[0], G: cfg.Sky[1], B: cfg.Sky[2], A: 1}

	// Start outside the cubelet looking at its center.
	cam := Camera{
		Position: mgl32.Vec3{0, float32(atlas.Edge) * 0.15, float32(atlas.Edge) * 0.75},
		Speed:    cfg.MoveSpeed,
	}
	input := NewInput()
	captured := false

	proj := Projection(cfg.FovDeg, frame.W, frame.H)

	startup := glfw.GetTime()
	last := startup
	frames := 0
	lastTitle := startup

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		// Escape releases the mouse first, then closes.
		if input.JustPressed(window, glfw.KeyEscape) {
			if captured {
				captured = false
				window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				window.SetShouldClose(true)
				continue
			}
		}
		if !captured && input.JustClicked(window, glfw.MouseButtonLeft) {
			captured = true
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			input.ResetCursor()
		}

		cam.Update(window, input, dt, captured)

		// Base model transform; optional slow spin around y.
		model := mgl32.Ident4()
		if cfg.Spin {
			angle := float32(math.Mod(now-startup, 2*math.Pi) * 0.2)
			model = mgl32.HomogRotate3DY(angle)
		}

		frame.Render(atlas, model, proj, cam.View(), sky)

		if input.JustPressed(window, glfw.KeyF2) {
			if name, err := SaveScreenshot(frame); err != nil {
				fmt.Fprintf(os.Stderr, "screenshot failed: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "saved %s\n", name)
			}
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		rend.Upload(frame)
		rend.Draw()
		window.SwapBuffers()

		frames++
		if now-lastTitle >= 0.5 {
			fps := float64(frames) / (now - lastTitle)
			window.SetTitle(fmt.Sprintf("Cubelet %.1f", fps))
			frames = 0
			lastTitle = now
		}
	}
}

func configPath() string {
	if p := os.Getenv("CUBELET_CONFIG"); p != "" {
		return p
	}
	return "cubelet.yaml"
}

// loadOrGenerate restores the atlas from the snapshot cache when it
// matches the configured seed and render distance, otherwise runs
// worldgen and the distance transform and refreshes the cache.
func loadOrGenerate(cfg Config, seed int64) *vox.Atlas {
	if cfg.SnapshotPath != "" {
		if snapSeed, atlas, err := vox.LoadAtlas(cfg.SnapshotPath, cfg.RenderDistance); err == nil {
			if snapSeed == seed {
				return atlas
			}
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "atlas snapshot unusable (regenerating): %v\n", err)
		}
	}

	atlas := vox.NewAtlas(cfg.RenderDistance)
	start := time.Now()
	voxels := vox.GenerateTerrain(atlas, seed)
	vox.ComputeDistanceField(atlas)
	fmt.Fprintf(os.Stderr, "generated %d voxels in %s\n", voxels, time.Since(start))

	if cfg.SnapshotPath != "" {
		if err := vox.SaveAtlas(cfg.SnapshotPath, seed, atlas); err != nil {
			fmt.Fprintf(os.Stderr, "atlas snapshot save failed: %v\n", err)
		}
	}
	return atlas
}
