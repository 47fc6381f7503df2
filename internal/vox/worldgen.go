package vox

import "github.com/aquilax/go-perlin"

// Terrain noise parameters. The heightfield is a single low-frequency
// Perlin octave stack: ground fills everything below edge/3 plus a
// +-10 voxel noise swell.
const (
	terrainNoiseScale = 32.0
	terrainNoiseAmp   = 10.0
	perlinAlpha       = 2.0
	perlinBeta        = 2.0
	perlinOctaves     = 3
)

// Base ground color; per-voxel variation is hashed on top so adjacent
// voxels stay distinguishable under flat shading.
var groundColor = RGBA{R: 0.0, G: 0.6, B: 0.1, A: 1}

// GenerateTerrain fills the atlas color volume with a Perlin heightfield
// and returns the number of occupied voxels. Cells above the ground
// level stay empty (alpha 0).
func GenerateTerrain(a *Atlas, seed int64) int {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	voxels := 0
	base := a.Edge / 3
	for x := 0; x < a.Edge; x++ {
		for z := 0; z < a.Edge; z++ {
			n := p.Noise2D(float64(x)/terrainNoiseScale, float64(z)/terrainNoiseScale)
			maxY := base + int(terrainNoiseAmp*n)
			if maxY < 1 {
				maxY = 1
			}
			if maxY > a.Edge {
				maxY = a.Edge
			}
			for y := 0; y < maxY; y++ {
				a.SetVoxel(x, y, z, groundVariant(uint64(seed), x, y, z))
				voxels++
			}
		}
	}
	return voxels
}

// groundVariant perturbs the base ground color per voxel.
func groundVariant(seed uint64, x, y, z int) RGBA {
	h := hash3D(seed, x, y, z)
	v := float32(h&0xFF)/255.0*0.12 - 0.06
	return RGBA{
		R: clamp01(groundColor.R + v*0.5),
		G: clamp01(groundColor.G + v),
		B: clamp01(groundColor.B + v*0.5),
		A: 1,
	}
}
