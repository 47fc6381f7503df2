package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevMouse   map[glfw.MouseButton]bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	haveCursor  bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorDelta returns the cursor movement since the previous call. The
// first call after ResetCursor reports zero so capturing the mouse
// doesn't produce a view jump.
func (in *Input) CursorDelta(window *glfw.Window) (float64, float64) {
	cx, cy := window.GetCursorPos()
	if !in.haveCursor {
		in.prevCursorX, in.prevCursorY = cx, cy
		in.haveCursor = true
		return 0, 0
	}
	dx := cx - in.prevCursorX
	dy := cy - in.prevCursorY
	in.prevCursorX, in.prevCursorY = cx, cy
	return dx, dy
}

// ResetCursor forgets the tracked cursor position.
func (in *Input) ResetCursor() {
	in.haveCursor = false
}
