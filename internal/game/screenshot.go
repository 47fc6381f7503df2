package game

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"
)

// SaveScreenshot writes the current software framebuffer as a PNG named
// by timestamp and returns the filename.
func SaveScreenshot(f *Frame) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	copy(img.Pix, f.Pix)

	name := fmt.Sprintf("cubelet-%s.png", time.Now().Format("20060102-150405"))
	out, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("screenshot create: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return "", fmt.Errorf("screenshot encode: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("screenshot close: %w", err)
	}
	return name, nil
}
