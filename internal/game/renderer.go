package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer owns the GL side of the display: one program, one fullscreen
// quad, one texture holding the software framebuffer.
type Renderer struct {
	blitProg uint32
	blitVAO  uint32
	blitVBO  uint32
	frameTex uint32

	uFrameTex int32

	texW, texH int
}

func NewRenderer() (*Renderer, error) {
	blitProg, err := linkProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("blit program: %w", err)
	}

	r := &Renderer{blitProg: blitProg}

	// Fullscreen quad VAO/VBO (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.blitVAO = vao
	r.blitVBO = vbo

	gl.UseProgram(blitProg)
	r.uFrameTex = gl.GetUniformLocation(blitProg, gl.Str("uFrameTex\x00"))
	gl.Uniform1i(r.uFrameTex, 0)

	return r, nil
}

// ensureTexture (re)creates the frame texture at the given size.
func (r *Renderer) ensureTexture(w, h int) {
	if r.frameTex != 0 && r.texW == w && r.texH == h {
		return
	}
	if r.frameTex != 0 {
		gl.DeleteTextures(1, &r.frameTex)
	}
	gl.GenTextures(1, &r.frameTex)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil,
	)
	r.texW, r.texH = w, h
}

// Upload pushes the software framebuffer into the frame texture.
func (r *Renderer) Upload(f *Frame) {
	r.ensureTexture(f.W, f.H)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(f.W), int32(f.H),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.Pix),
	)
}

// Draw blits the frame texture across the window.
func (r *Renderer) Draw() {
	gl.UseProgram(r.blitProg)
	gl.BindVertexArray(r.blitVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) Destroy() {
	if r.frameTex != 0 {
		gl.DeleteTextures(1, &r.frameTex)
	}
	gl.DeleteBuffers(1, &r.blitVBO)
	gl.DeleteVertexArrays(1, &r.blitVAO)
	gl.DeleteProgram(r.blitProg)
}
