package vox

// Shade composes the final pixel contribution for a traversal result.
// The second return is false only for HitNone, where the invocation
// discards and the caller falls through to whatever is behind the chunk.
func Shade(res Result, sky RGBA) (RGBA, bool) {
	switch res.Kind {
	case HitOpaque:
		f := axisShade(res.Mask)
		return RGBA{
			R: res.Color.R * f,
			G: res.Color.G * f,
			B: res.Color.B * f,
			A: res.Color.A,
		}, true

	case HitFarField:
		// Open space: the carried distance brightens the fog slightly so
		// deep sky reads lighter than a near-surface grazing sample.
		f := 0.85 + 0.15*clamp01(res.Dist/float32(ChunkSize))
		return RGBA{R: sky.R * f, G: sky.G * f, B: sky.B * f, A: 1}, true

	case HitExhausted:
		// Diagnostic: traversal cost in the red channel.
		return RGBA{R: float32(res.Iters) / MaxMarchIters, A: 1}, true
	}

	return RGBA{}, false
}

// axisShade is the fixed directional factor for the last-crossed face:
// x faces are darkest, y faces full, z faces in between.
func axisShade(m AxisMask) float32 {
	switch {
	case m.X:
		return ShadeX
	case m.Y:
		return ShadeY
	case m.Z:
		return ShadeZ
	}
	return 1
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
